// Package commands provides the command-line interface for the arxide tool.
//
// It implements commands for:
//   - encryption (logical paths to <md5>.bin)
//   - decryption (<md5>.bin to logical paths, the default)
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arxide/arxide/internal/config"
	"github.com/arxide/arxide/internal/logging"
	"github.com/arxide/arxide/internal/logic"
)

// envPrefix prefixes environment variables, e.g. ARXIDE_KEY_FILE.
const envPrefix = "ARXIDE"

// preRun returns a PreRunE handler that loads flags and environment into cfg,
// resolves the positional arguments and validates the configuration.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Input, cfg.Output = args[0], args[1]
		cfg.Decrypt = decrypt

		return cfg.Validate()
	}
}

// run builds the logger and executes the logic on the host filesystem.
func run(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Quiet)
		if err != nil {
			return err
		}

		defer logger.Sync() //nolint:errcheck

		return logic.Run(afero.NewOsFs(), cfg, logger, cmd.ErrOrStderr())
	}
}
