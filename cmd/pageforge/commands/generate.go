package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pageforge/pageforge/internal/config"
	pferrors "github.com/pageforge/pageforge/internal/errors"
	"github.com/pageforge/pageforge/internal/framework"
	"github.com/pageforge/pageforge/internal/generator"
	"github.com/pageforge/pageforge/internal/history"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output      string   `short:"o" help:"Output directory for generated artifacts" default:"./dist"`
	Template    string   `short:"t" help:"Registered template id to generate from instead of the configuration file"`
	Name        string   `help:"Page name override when generating from a template"`
	Framework   string   `help:"Style framework override" enum:",bootstrap,tailwind,vanilla" default:""`
	MobileFirst bool     `name:"mobile-first" help:"Force responsive mobile-first generation"`
	Scripting   bool     `help:"Enable platform scripting blocks"`
	DataSource  []string `name:"data-source" help:"Data extension to bind when scripting is enabled (repeatable)"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	engine, err := buildEngine(root.Library)
	if err != nil {
		return err
	}
	gen := generator.New(engine)

	var (
		out      *generator.Output
		pageType string
		warnings int
	)
	if g.Template != "" {
		if tpl, ok := engine.Template(g.Template); ok {
			pageType = string(tpl.PageType)
		}
		out, err = gen.GenerateFromTemplate(g.Template, g.templateOverrides())
	} else {
		var cfg *config.PageConfiguration
		cfg, err = config.Load(root.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		g.applyOverrides(cfg)
		pageType = string(cfg.PageSettings.Type)

		diag := config.ValidateWithDiagnostics(cfg)
		warnings = len(diag.Warnings)
		for _, w := range diag.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Path, w.Message)
		}

		if g.Scripting || len(g.DataSource) > 0 {
			out, err = gen.GenerateWithScripting(cfg, &generator.ScriptingOptions{DataSources: g.DataSource})
		} else {
			out, err = gen.Generate(cfg)
		}
	}
	if err != nil {
		if verr, ok := pferrors.AsValidationError(err); ok {
			fmt.Fprintln(os.Stderr, "Configuration is invalid:")
			for _, f := range verr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", f.Path, f.Message)
			}
		}
		return err
	}

	files, err := generator.WriteOutput(out, g.Output)
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	rec := history.FromOutput(out, g.Template)
	rec.PageType = pageType
	rec.Warnings = warnings
	recordRun(root.HistoryDB, rec)

	meta := out.Pages[0].Meta
	fmt.Printf("Generated page %q (%s)\n", meta.PageName, meta.Framework)
	if len(meta.ComponentTypes) > 0 {
		fmt.Printf("  components: %s\n", strings.Join(meta.ComponentTypes, ", "))
	}
	fmt.Printf("  total size %d bytes, optimization score %d/100, estimated load %d ms\n",
		meta.TotalSize, meta.Performance.OptimizationScore, meta.Performance.EstimatedLoadMs)
	fmt.Printf("  %d files written to %s\n", len(files), g.Output)
	return nil
}

// applyOverrides folds command-line overrides into a loaded configuration.
// Scripting flags are handled by GenerateWithScripting instead.
func (g *GenerateCmd) applyOverrides(cfg *config.PageConfiguration) {
	if g.Framework != "" {
		cfg.CodeResources.Style.Framework = framework.Framework(g.Framework)
	}
	if g.MobileFirst {
		cfg.AdvancedOptions.Responsive = true
		cfg.AdvancedOptions.MobileFirst = true
	}
}

// templateOverrides renders the command-line overrides as an override document
// for template instantiation. Only the touched keys are present, so the
// template's remaining configuration survives the merge.
func (g *GenerateCmd) templateOverrides() map[string]any {
	overrides := make(map[string]any)
	if g.Name != "" {
		overrides["pageSettings"] = map[string]any{"pageName": g.Name}
	}
	if g.Framework != "" {
		overrides["codeResources"] = map[string]any{
			"style": map[string]any{"framework": g.Framework},
		}
	}

	advanced := make(map[string]any)
	if g.MobileFirst {
		advanced["responsive"] = true
		advanced["mobileFirst"] = true
	}
	if g.Scripting || len(g.DataSource) > 0 {
		advanced["scriptingEnabled"] = true
	}
	if len(g.DataSource) > 0 {
		advanced["dataSourceIntegration"] = g.DataSource
	}
	if len(advanced) > 0 {
		overrides["advancedOptions"] = advanced
	}

	if len(overrides) == 0 {
		return nil
	}
	return overrides
}

// recordRun appends a successful run to the history store. History is best
// effort; failures only log.
func recordRun(dbPath string, rec history.Record) {
	if dbPath == "" {
		return
	}
	store, err := history.NewSQLiteStore(dbPath)
	if err != nil {
		slog.Warn("History store unavailable", "error", err)
		return
	}
	defer func() {
		_ = store.Close()
	}()
	if err := store.Append(context.Background(), rec); err != nil {
		slog.Warn("Failed to record generation run", "error", err)
	}
}
