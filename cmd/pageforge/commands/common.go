package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/library"
	"github.com/pageforge/pageforge/internal/templates"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config    string           `short:"c" help:"Page configuration file path" default:"page.yaml" env:"PAGEFORGE_CONFIG"`
	Library   string           `help:"Directory of extra component definition files" env:"PAGEFORGE_LIBRARY"`
	HistoryDB string           `name:"history-db" help:"SQLite file recording generation runs (empty disables)" default:".pageforge/history.db" env:"PAGEFORGE_HISTORY"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate   GenerateCmd   `cmd:"" help:"Generate page artifacts from a configuration file or template"`
	Validate   ValidateCmd   `cmd:"" help:"Validate a page configuration and report errors and warnings"`
	Init       InitCmd       `cmd:"" help:"Write a starter page configuration"`
	Templates  TemplatesCmd  `cmd:"" help:"List the registered page templates"`
	Components ComponentsCmd `cmd:"" help:"List the registered component definitions"`
	Import     ImportCmd     `cmd:"" help:"Import component definitions from a directory or git repository"`
	History    HistoryCmd    `cmd:"" help:"Show past generation runs"`
	Daemon     DaemonCmd     `cmd:"" help:"Watch the configuration and regenerate continuously"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// buildEngine returns a template engine backed by the standard component
// library, extended with definitions loaded from libraryDir when set.
func buildEngine(libraryDir string) (*templates.Engine, error) {
	if libraryDir == "" {
		return templates.NewEngine(nil), nil
	}

	defs, err := library.LoadDir(libraryDir)
	if err != nil {
		return nil, fmt.Errorf("load component definitions: %w", err)
	}
	lib := components.NewStandardLibrary()
	library.RegisterAll(lib, defs)
	return templates.NewEngine(lib), nil
}
