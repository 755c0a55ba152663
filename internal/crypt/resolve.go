package crypt

import (
	"fmt"
	"strings"

	"github.com/arxide/arxide/internal/digest"
	"github.com/arxide/arxide/internal/fileutil"
	"github.com/arxide/arxide/internal/mirror"
)

// resolveManifest handles every manifest entry and records the digests it
// transformed or copied in consumed.
func (p *Processor) resolveManifest(locations *mirror.Mirror, consumed map[string]struct{}, summary *Summary) {
	for _, path := range p.manifest.Paths() {
		result := p.resolveEntry(locations, path)

		if result.Status == StatusProcessed || result.Status == StatusCopied {
			consumed[result.Digest] = struct{}{}
		}

		p.report(summary, result)
	}
}

// entryLocations returns the source and destination of a manifest entry.
func (p *Processor) entryLocations(locations *mirror.Mirror, path, hash string) (src, dst string) {
	if p.opts.Direction == Encrypt {
		return locations.InputPath(path), locations.OutputPath(hash + hashedExt)
	}

	return locations.InputPath(hash + hashedExt), locations.OutputPath(path)
}

func (p *Processor) resolveEntry(locations *mirror.Mirror, path string) Result {
	hash := digest.Hex(path)
	src, dst := p.entryLocations(locations, path, hash)

	result := Result{Phase: PhaseManifest, Input: src, Digest: hash}

	info, err := locations.Fs().Stat(src)
	if err != nil {
		result.Status = StatusSkipped
		result.Error = fmt.Errorf("%w: %s", ErrMissingManifestEntry, path)

		return result
	}

	if !fileutil.IsRegular(info) {
		result.Status = StatusSkipped
		result.Error = fmt.Errorf("%w: %s", ErrNotRegularFile, path)

		return result
	}

	seed, status := hash, StatusProcessed

	if strings.HasSuffix(path, passthroughExt) {
		seed, status = "", StatusCopied
	}

	size, err := p.transfer(locations, src, dst, seed)
	if err != nil {
		result.Status = StatusFailed
		result.Error = err

		return result
	}

	result.Status = status
	result.Output = dst
	result.Size = size

	return result
}
