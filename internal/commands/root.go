package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arxide/arxide/internal/config"
	"github.com/arxide/arxide/internal/profile"
)

// NewRootCommand creates the root command with common configuration.
// Invoked without a subcommand it decrypts.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "arxide [flags] [command] INPUT OUTPUT",
		Short: "ArcSys asset encrypt/decrypt tool",
		Long: `Encrypts and decrypts game assets obfuscated with an MD5-keyed XOR keystream.

INPUT and OUTPUT can be files or directories. Encrypted assets are stored as
<md5 of path>.bin; a file list maps them back to their original paths. Files
missing from the list are still decrypted, keeping their hashed names.`,
		Version:       version,
		Args:          cobra.ExactArgs(2), //nolint:mnd
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       preRun(cfg, true),
		RunE:          run(cfg),
	}

	flags := root.PersistentFlags()

	flags.StringP("key", "k", "", "Secret (43 bytes, hex-encoded)")
	flags.StringP("key-file", "f", "", "Path to a file holding the raw 43-byte secret")
	flags.StringP("game", "g", "",
		"Game profile selecting a built-in secret ("+strings.Join(profile.Names(), ", ")+"), defaults to "+
			string(profile.Default)+" when no key is given")
	flags.StringP("file-list", "l", "", "File list with one logical path per line (.json/.jsonc for a JSON array)")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print statistics after the run")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolP("preserve-timestamps", "p", false, "Copy source modification times onto outputs")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	return root
}
