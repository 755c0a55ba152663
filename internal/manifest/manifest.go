// Package manifest loads the list of logical asset paths expected in an archive.
//
// The plain format holds one relative path per line; blank lines are ignored and
// there is no comment or escape syntax. Files ending in .json or .jsonc instead
// hold a JSON array of paths, with comments allowed.
package manifest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// Manifest is an immutable set of logical relative paths.
type Manifest struct {
	paths map[string]struct{}
}

// New builds a manifest from paths. Empty entries are dropped and duplicates collapse.
func New(paths ...string) *Manifest {
	m := &Manifest{paths: make(map[string]struct{}, len(paths))}

	for _, p := range paths {
		if p == "" {
			continue
		}

		m.paths[p] = struct{}{}
	}

	return m
}

// Len returns the number of distinct paths.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}

	return len(m.paths)
}

// Contains reports whether path is listed.
func (m *Manifest) Contains(path string) bool {
	if m == nil {
		return false
	}

	_, ok := m.paths[path]

	return ok
}

// Paths returns the listed paths in lexical order.
func (m *Manifest) Paths() []string {
	if m == nil {
		return nil
	}

	paths := make([]string, 0, len(m.paths))
	for p := range m.paths {
		paths = append(paths, p)
	}

	slices.Sort(paths)

	return paths
}

// Load reads a manifest from fs, choosing the format from the file extension.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %q: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return parseJSONC(file, path)
	default:
		return Parse(file)
	}
}

// Parse reads the plain one-path-per-line format.
func Parse(reader io.Reader) (*Manifest, error) {
	var paths []string

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return New(paths...), nil
}

func parseJSONC(reader io.Reader, path string) (*Manifest, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}

	var paths []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &paths); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, err)
	}

	return New(paths...), nil
}
