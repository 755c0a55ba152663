package commands

import (
	"github.com/spf13/cobra"

	"github.com/arxide/arxide/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] INPUT OUTPUT",
		Aliases: []string{"dec"},
		Short:   "Decrypt <md5>.bin files",
		Args:    cobra.ExactArgs(2), //nolint:mnd
		PreRunE: preRun(cfg, true),
		RunE:    run(cfg),
	}
}
