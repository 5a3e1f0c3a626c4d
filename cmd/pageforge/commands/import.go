package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/library"
)

// ImportCmd implements the 'import' command.
type ImportCmd struct {
	Source  string `arg:"" help:"Directory path or git repository URL containing definition files"`
	Branch  string `help:"Git branch to clone"`
	Subdir  string `help:"Subdirectory within the repository holding the definitions"`
	Dest    string `short:"d" help:"Directory to write the imported definitions to" default:"./components"`
	WorkDir string `name:"work-dir" help:"Scratch directory for git clones"`
	DryRun  bool   `name:"dry-run" help:"Validate and list the definitions without writing them"`
}

func (i *ImportCmd) Run(_ *Global, _ *CLI) error {
	importer := library.NewImporter(i.WorkDir)
	defs, err := importer.Import(context.Background(), library.Source{
		Location: i.Source,
		Branch:   i.Branch,
		Subdir:   i.Subdir,
	})
	if err != nil {
		return fmt.Errorf("import definitions: %w", err)
	}

	if len(defs) == 0 {
		fmt.Println("No component definitions found")
		return nil
	}

	for _, def := range defs {
		fmt.Printf("  %s\t%s\t%s\n", def.ID, def.Category, def.Name)
	}
	if i.DryRun {
		fmt.Printf("%d definitions validated (dry run, nothing written)\n", len(defs))
		return nil
	}

	if err := writeDefinitions(defs, i.Dest); err != nil {
		return err
	}
	fmt.Printf("Imported %d definitions into %s\n", len(defs), i.Dest)
	fmt.Printf("Use them with: pageforge --library %s generate\n", i.Dest)
	return nil
}

// writeDefinitions persists each definition as <id>.yaml in dir, normalized to
// the loader's file format.
func writeDefinitions(defs []components.Definition, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create definitions directory: %w", err)
	}

	for _, def := range defs {
		data, err := yaml.Marshal(def)
		if err != nil {
			return fmt.Errorf("encode definition %s: %w", def.ID, err)
		}
		path := filepath.Join(dir, def.ID+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write definition %s: %w", def.ID, err)
		}
	}
	return nil
}
