package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/templates"
)

// TemplatesCmd implements the 'templates' command.
type TemplatesCmd struct {
	Type   string `help:"Filter by page type (landing, form, preference, unsubscribe, custom)"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

func (t *TemplatesCmd) Run(_ *Global, root *CLI) error {
	engine, err := buildEngine(root.Library)
	if err != nil {
		return err
	}

	list := engine.Templates()
	if t.Type != "" {
		pt := config.NormalizePageType(t.Type)
		if pt == "" {
			return fmt.Errorf("unknown page type: %s", t.Type)
		}
		list = engine.TemplatesFor(pt)
	}

	return renderTemplates(os.Stdout, list, t.Format)
}

func renderTemplates(w io.Writer, list []templates.PageTemplate, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No templates registered")
		return err
	}

	for i, tpl := range list {
		_, _ = fmt.Fprintf(w, "%d) %s\t%s/%s\t%s\n", i+1, tpl.ID, tpl.PageType, tpl.Framework, tpl.Name)
		if tpl.Description != "" {
			_, _ = fmt.Fprintf(w, "   %s\n", tpl.Description)
		}
	}
	return nil
}
