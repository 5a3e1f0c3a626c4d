package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// GenerationReport is the machine-readable summary persisted alongside the
// generated artifacts.
type GenerationReport struct {
	Meta  PageMeta `json:"metadata"`
	Files []string `json:"files"`
}

// WriteOutput persists a generation result under dir: the page markup as
// index.html, every code resource under its suggested name, the three
// documentation texts and a generation-report.json. Returns the written file
// names relative to dir.
func WriteOutput(out *Output, dir string) ([]string, error) {
	if out == nil || len(out.Pages) == 0 {
		return nil, fmt.Errorf("write output: nothing to write")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure output directory: %w", err)
	}

	var written []string
	write := func(name, content string) error {
		if err := writeFileAtomic(filepath.Join(dir, name), []byte(content)); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	}

	if err := write("index.html", out.Pages[0].Markup); err != nil {
		return nil, err
	}
	for _, res := range out.Resources {
		if err := write(res.Name, res.Content); err != nil {
			return nil, err
		}
	}
	if err := write("integration-notes.md", out.IntegrationNotes); err != nil {
		return nil, err
	}
	if err := write("testing-guidelines.md", out.TestingGuidelines); err != nil {
		return nil, err
	}
	if err := write("deployment-instructions.md", out.DeploymentInstructions); err != nil {
		return nil, err
	}

	report := GenerationReport{Meta: out.Pages[0].Meta, Files: append([]string(nil), written...)}
	jb, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal generation report: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, "generation-report.json"), jb); err != nil {
		return nil, err
	}
	written = append(written, "generation-report.json")

	return written, nil
}

// writeFileAtomic writes via a temp file and rename so readers never observe
// a partial artifact.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
