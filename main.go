// Command arxide encrypts and decrypts ArcSys game assets.
package main

import (
	"fmt"
	"os"

	"github.com/arxide/arxide/internal/commands"
	"github.com/arxide/arxide/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	root := commands.NewRootCommand(&config.Config{}, version)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
