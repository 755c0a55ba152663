// Package mirror resolves an input/output location pair, which may be a single
// file pair or a pair of directory trees, and maps input files onto their
// destinations.
package mirror

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrInputMissing is returned when the input location cannot be stat'ed.
	ErrInputMissing = errors.New("input path does not exist")
	// ErrPathKindMismatch is returned when an existing output is a file while the
	// input is a directory, or the other way round.
	ErrPathKindMismatch = errors.New("output and input path type mismatch, refusing to delete/overwrite")
)

// Mirror holds a resolved input/output location pair.
type Mirror struct {
	fs          afero.Fs
	input       string
	output      string
	inputIsFile bool
}

// New resolves input and output on fsys.
// The input must exist. When the output exists it must be of the same kind.
func New(fsys afero.Fs, input, output string) (*Mirror, error) {
	input = filepath.Clean(input)
	output = filepath.Clean(output)

	inInfo, err := fsys.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInputMissing, input, err)
	}

	outInfo, err := fsys.Stat(output)

	switch {
	case err == nil:
		if outInfo.IsDir() != inInfo.IsDir() {
			return nil, fmt.Errorf("%w: input %q, output %q", ErrPathKindMismatch, input, output)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("stat output %q: %w", output, err)
	}

	return &Mirror{
		fs:          fsys,
		input:       input,
		output:      output,
		inputIsFile: !inInfo.IsDir(),
	}, nil
}

// Fs returns the filesystem the mirror operates on.
func (m *Mirror) Fs() afero.Fs {
	return m.fs
}

// Input returns the cleaned input root.
func (m *Mirror) Input() string {
	return m.input
}

// Output returns the cleaned output root.
func (m *Mirror) Output() string {
	return m.output
}

// InputIsFile reports whether the input root is a single file.
func (m *Mirror) InputIsFile() bool {
	return m.inputIsFile
}

// InputPath joins a relative path onto the input root.
func (m *Mirror) InputPath(rel string) string {
	return filepath.Join(m.input, rel)
}

// OutputPath joins a relative path onto the output root.
func (m *Mirror) OutputPath(rel string) string {
	return filepath.Join(m.output, rel)
}

// Files lists the input files: the input itself when it is a file, otherwise the
// regular files directly inside it. Subdirectories are not descended into.
func (m *Mirror) Files() ([]string, error) {
	if m.inputIsFile {
		return []string{m.input}, nil
	}

	entries, err := afero.ReadDir(m.fs, m.input)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %q: %w", m.input, err)
	}

	files := make([]string, 0, len(entries))

	for _, entry := range entries {
		path := filepath.Join(m.input, entry.Name())

		// Stat again so symlinks to regular files are followed.
		info, err := m.fs.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		files = append(files, path)
	}

	return files, nil
}

// Destination maps an input file onto the output location.
// The input root itself maps to the output root.
func (m *Mirror) Destination(src string) (string, error) {
	src = filepath.Clean(src)

	if src == m.input {
		return m.output, nil
	}

	rel, err := filepath.Rel(m.input, src)
	if err != nil {
		return "", fmt.Errorf("relativizing %q: %w", src, err)
	}

	return filepath.Join(m.output, rel), nil
}

// Prepare creates the missing parent directories of dst.
func (m *Mirror) Prepare(dst string) error {
	const dirPerm = 0o755

	if err := m.fs.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("creating parent directory of %q: %w", dst, err)
	}

	return nil
}
