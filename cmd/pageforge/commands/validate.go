package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pageforge/pageforge/internal/config"
	pferrors "github.com/pageforge/pageforge/internal/errors"
	"github.com/pageforge/pageforge/internal/generator"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

// validationReport combines schema diagnostics with the responsive pairing
// check into one printable result.
type validationReport struct {
	Config   string                `json:"config"`
	Valid    bool                  `json:"valid"`
	Errors   []pferrors.FieldError `json:"errors,omitempty"`
	Warnings []config.Warning      `json:"warnings,omitempty"`
	Notes    []string              `json:"notes,omitempty"`
}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	diag := config.ValidateWithDiagnostics(cfg)
	responsive := generator.ValidateResponsiveConfig(cfg)

	report := validationReport{
		Config:   root.Config,
		Valid:    diag.Valid && responsive.Valid(),
		Errors:   append(diag.Errors, responsive.Errors...),
		Warnings: diag.Warnings,
		Notes:    responsive.Warnings,
	}

	if err := renderValidation(os.Stdout, report, v.Format, v.Quiet); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Errors block the build; warnings flag it unless quiet.
	if len(report.Errors) > 0 {
		os.Exit(2)
	} else if len(report.Warnings)+len(report.Notes) > 0 && !v.Quiet {
		os.Exit(1)
	}

	return nil
}

func renderValidation(w io.Writer, report validationReport, format string, quiet bool) error {
	if format == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if report.Valid && len(report.Warnings)+len(report.Notes) == 0 {
		_, err := fmt.Fprintf(w, "%s: configuration is valid\n", report.Config)
		return err
	}

	_, _ = fmt.Fprintf(w, "%s:\n", report.Config)
	for _, e := range report.Errors {
		_, _ = fmt.Fprintf(w, "  error  %s: %s (%s)\n", e.Path, e.Message, e.Code)
	}
	if !quiet {
		for _, warn := range report.Warnings {
			_, _ = fmt.Fprintf(w, "  warn   %s: %s (%s)\n", warn.Path, warn.Message, warn.Code)
		}
		for _, note := range report.Notes {
			_, _ = fmt.Fprintf(w, "  note   %s\n", note)
		}
	}

	_, err := fmt.Fprintf(w, "%d errors, %d warnings\n",
		len(report.Errors), len(report.Warnings)+len(report.Notes))
	return err
}
