package crypt

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/arxide/arxide/internal/digest"
	"github.com/arxide/arxide/internal/mirror"
)

// scanStrays transforms every input file named by a digest that is not in consumed.
// The file name is the keystream seed, and outputs keep the same name.
func (p *Processor) scanStrays(locations *mirror.Mirror, consumed map[string]struct{}, summary *Summary) error {
	files, err := locations.Files()
	if err != nil {
		return fmt.Errorf("listing input files: %w", err)
	}

	for _, path := range files {
		name := filepath.Base(path)
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		if !digest.Valid(stem) {
			p.report(summary, Result{
				Phase:  PhaseStray,
				Status: StatusSkipped,
				Input:  path,
				Error:  fmt.Errorf("%w: %s", ErrInvalidFileName, stem),
			})

			continue
		}

		if _, ok := consumed[stem]; ok {
			p.log.Debug("already processed from file list", zap.String("src", path))

			continue
		}

		p.report(summary, p.processStray(locations, path, stem))
	}

	return nil
}

func (p *Processor) processStray(locations *mirror.Mirror, path, stem string) Result {
	result := Result{Phase: PhaseStray, Input: path, Digest: stem}

	dst, err := locations.Destination(path)
	if err != nil {
		result.Status = StatusFailed
		result.Error = err

		return result
	}

	size, err := p.transfer(locations, path, dst, stem)
	if err != nil {
		result.Status = StatusFailed
		result.Error = err

		return result
	}

	result.Status = StatusProcessed
	result.Output = dst
	result.Size = size

	return result
}
