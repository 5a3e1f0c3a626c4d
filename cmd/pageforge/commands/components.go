package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pageforge/pageforge/internal/components"
)

// ComponentsCmd implements the 'components' command.
type ComponentsCmd struct {
	Category string `help:"Filter by category"`
	Format   string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

func (c *ComponentsCmd) Run(_ *Global, root *CLI) error {
	engine, err := buildEngine(root.Library)
	if err != nil {
		return err
	}
	lib := engine.Library()

	list := lib.List()
	if c.Category != "" {
		list = lib.ListByCategory(c.Category)
		if len(list) == 0 {
			return fmt.Errorf("no components in category %q (available: %s)",
				c.Category, strings.Join(lib.Categories(), ", "))
		}
	}

	return renderComponents(os.Stdout, list, c.Format)
}

func renderComponents(w io.Writer, list []components.Definition, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No components registered")
		return err
	}

	for i, def := range list {
		_, _ = fmt.Fprintf(w, "%d) %s\t%s\t%s\n", i+1, def.ID, def.Category, def.Name)
		if len(def.Props) > 0 {
			names := make([]string, len(def.Props))
			for j, p := range def.Props {
				names[j] = p.Name
			}
			_, _ = fmt.Fprintf(w, "   props: %s\n", strings.Join(names, ", "))
		}
	}
	return nil
}
