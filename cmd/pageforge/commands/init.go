package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pageforge/pageforge/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" help:"Directory to place the configuration file in"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		if err := os.MkdirAll(i.Output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		path = filepath.Join(i.Output, "page.yaml")
	}

	fmt.Printf("Writing starter configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	fmt.Println("Configuration created. Adjust it, then run: pageforge generate")
	return nil
}
