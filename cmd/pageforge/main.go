package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/pageforge/pageforge/cmd/pageforge/commands"
	"github.com/pageforge/pageforge/internal/version"
)

func main() {
	// A .env in the working directory feeds the PAGEFORGE_* flag defaults.
	// A missing file is fine.
	_ = godotenv.Load()

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("pageforge"),
		kong.Description("Generate page markup, styles and scripts from a declarative configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(&commands.Global{}); err != nil {
		fmt.Fprintf(os.Stderr, "pageforge: %v\n", err)
		os.Exit(1)
	}
}
