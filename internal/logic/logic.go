// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/arxide/arxide/internal/config"
	"github.com/arxide/arxide/internal/crypt"
	"github.com/arxide/arxide/internal/keystream"
	"github.com/arxide/arxide/internal/manifest"
	"github.com/arxide/arxide/internal/profile"
)

// Run is the main logic of the application. Stats, when enabled, are written to out.
func Run(fsys afero.Fs, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	start := time.Now()

	secret, err := resolveSecret(fsys, cfg, logger)
	if err != nil {
		return err
	}

	var list *manifest.Manifest

	if cfg.FileList != "" {
		list, err = manifest.Load(fsys, cfg.FileList)
		if err != nil {
			return fmt.Errorf("loading file list: %w", err)
		}
	}

	opts := crypt.Options{
		Direction:          crypt.Encrypt,
		PreserveTimestamps: cfg.PreserveTimestamps,
	}

	if cfg.Decrypt {
		opts.Direction = crypt.Decrypt
	}

	logger.Debug("starting run",
		zap.Stringer("direction", opts.Direction),
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.Int("file_list_entries", list.Len()),
	)

	summary, err := crypt.NewProcessor(secret, list, opts, logger).Run(fsys, cfg.Input, cfg.Output)

	if cfg.Stats {
		printStats(out, summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveSecret picks the secret from --key, then --key-file, then --game.
// Without any of them the default profile is used.
func resolveSecret(fsys afero.Fs, cfg *config.Config, logger *zap.Logger) (keystream.Secret, error) {
	switch {
	case cfg.Key != "":
		secret, err := keystream.SecretFromHex(cfg.Key)
		if err != nil {
			return secret, fmt.Errorf("reading key: %w", err)
		}

		return secret, nil
	case cfg.KeyFile != "":
		data, err := afero.ReadFile(fsys, cfg.KeyFile)
		if err != nil {
			return keystream.Secret{}, fmt.Errorf("reading key file: %w", err)
		}

		secret, err := keystream.NewSecret(data)
		if err != nil {
			return secret, fmt.Errorf("reading key file %q: %w", cfg.KeyFile, err)
		}

		return secret, nil
	}

	game := profile.Default

	if cfg.HasKeySource() {
		parsed, err := profile.Parse(cfg.Game)
		if err != nil {
			return keystream.Secret{}, err
		}

		game = parsed
	} else {
		logger.Info("no game or key specified, using default game", zap.String("game", string(game)))
	}

	secret, err := game.Secret()
	if err != nil {
		return secret, fmt.Errorf("no key file specified: %w", err)
	}

	return secret, nil
}

func printStats(out io.Writer, summary crypt.Summary, duration time.Duration) {
	fmt.Fprintf(out, "\nStats\n")
	fmt.Fprintf(out, "  Processed: %d\n", summary.Processed)
	fmt.Fprintf(out, "  Copied:    %d\n", summary.Copied)
	fmt.Fprintf(out, "  Skipped:   %d\n", summary.Skipped)
	fmt.Fprintf(out, "  Errors:    %d\n", summary.Failed)
	//nolint:gosec // Bytes is always non-negative (sum of file sizes)
	fmt.Fprintf(out, "  Size:      %s\n", humanize.IBytes(uint64(max(0, summary.Bytes))))
	fmt.Fprintf(out, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
