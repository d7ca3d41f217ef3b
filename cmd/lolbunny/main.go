package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/lolbunny/internal/adapters/commandparsing"
	"github.com/AntonioJCosta/lolbunny/internal/adapters/shortcutdata"
	"github.com/AntonioJCosta/lolbunny/internal/handlers/cli"
	"github.com/AntonioJCosta/lolbunny/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	// The catalog is compiled in, so a failure here is a build defect.
	shortcutProvider, err := shortcutdata.NewYAMLProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing shortcut provider: %v\n", err)
		os.Exit(1)
	}

	parser := commandparsing.NewSpaceParser()
	rootCmd := cli.NewRootCommand(Version, shortcutProvider, parser)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
		os.Exit(1)
	}
}
