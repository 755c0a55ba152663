package crypt

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/arxide/arxide/internal/fileutil"
	"github.com/arxide/arxide/internal/keystream"
	"github.com/arxide/arxide/internal/manifest"
	"github.com/arxide/arxide/internal/mirror"
)

// Direction selects which side of a manifest entry carries the hashed name.
type Direction int

const (
	// Decrypt reads <md5>.bin files and writes logical paths.
	Decrypt Direction = iota
	// Encrypt reads logical paths and writes <md5>.bin files.
	Encrypt
)

func (d Direction) String() string {
	if d == Encrypt {
		return "encrypt"
	}

	return "decrypt"
}

// hashedExt is the extension of content-addressed files.
const hashedExt = ".bin"

// passthroughExt marks manifest entries stored without obfuscation.
const passthroughExt = ".wmv"

// Options tune a Processor.
type Options struct {
	Direction Direction

	// PreserveTimestamps copies the source modification time onto outputs.
	PreserveTimestamps bool
}

// Processor handles the encryption and decryption of asset trees.
type Processor struct {
	// cipher applies the keystream
	cipher *keystream.Cipher

	// manifest lists the known logical paths, may be empty
	manifest *manifest.Manifest

	opts Options
	log  *zap.Logger
}

// NewProcessor creates a Processor. A nil manifest runs the stray phase only;
// a nil logger discards output.
func NewProcessor(secret keystream.Secret, list *manifest.Manifest, opts Options, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Processor{
		cipher:   keystream.New(secret),
		manifest: list,
		opts:     opts,
		log:      logger,
	}
}

// Run processes input into output on fsys. The returned error is set only for
// problems that stop the whole run; per-file outcomes are in the Summary.
func (p *Processor) Run(fsys afero.Fs, input, output string) (Summary, error) {
	var summary Summary

	locations, err := mirror.New(fsys, input, output)
	if err != nil {
		return summary, fmt.Errorf("resolving locations: %w", err)
	}

	consumed := make(map[string]struct{}, p.manifest.Len())

	if p.manifest.Len() > 0 {
		p.log.Info("processing file list", zap.Int("entries", p.manifest.Len()))
		p.resolveManifest(locations, consumed, &summary)
	}

	p.log.Info("processing stray files")

	if err := p.scanStrays(locations, consumed, &summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// report logs r and adds it to summary.
func (p *Processor) report(summary *Summary, r Result) {
	fields := []zap.Field{zap.String("src", r.Input)}

	if r.Output != "" {
		fields = append(fields, zap.String("dst", r.Output))
	}

	if r.Digest != "" {
		fields = append(fields, zap.String("digest", r.Digest))
	}

	switch r.Status {
	case StatusProcessed:
		p.log.Info("processed", fields...)
	case StatusCopied:
		p.log.Info("copied without processing", fields...)
	case StatusSkipped:
		p.log.Warn("skipping", append(fields, zap.NamedError("reason", r.Error))...)
	case StatusFailed:
		p.log.Error("failed to process file", append(fields, zap.Error(r.Error))...)
	}

	summary.Add(r)
}

// transfer writes src to dst through the keystream seeded by seed, or verbatim
// when seed is empty. The output appears atomically.
func (p *Processor) transfer(locations *mirror.Mirror, src, dst, seed string) (size int64, err error) {
	fsys := locations.Fs()

	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", src, err)
	}

	if err := locations.Prepare(dst); err != nil {
		return 0, err
	}

	inFile, err := fsys.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	tc, err := fileutil.NewTempContext(fsys, dst)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if seed == "" {
		if _, err = io.Copy(tc.TmpFile, inFile); err != nil {
			return 0, fmt.Errorf("copying file: %w", err)
		}
	} else {
		if _, err = p.cipher.Apply(seed, inFile, tc.TmpFile); err != nil {
			return 0, fmt.Errorf("applying keystream: %w", err)
		}
	}

	if err = tc.Commit(); err != nil {
		return 0, err
	}

	size, err = fileutil.FinalizeOutput(fsys, dst, p.opts.PreserveTimestamps, srcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}
