package commands

import (
	"github.com/spf13/cobra"

	"github.com/arxide/arxide/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] INPUT OUTPUT",
		Aliases: []string{"enc"},
		Short:   "Encrypt assets into <md5>.bin files",
		Args:    cobra.ExactArgs(2), //nolint:mnd
		PreRunE: preRun(cfg, false),
		RunE:    run(cfg),
	}
}
