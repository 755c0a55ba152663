package crypt

import "errors"

var (
	// ErrInvalidFileName marks a stray file whose stem is not a 32-character hex digest.
	ErrInvalidFileName = errors.New("invalid file name")
	// ErrMissingManifestEntry marks a manifest path with no source file on disk.
	ErrMissingManifestEntry = errors.New("file doesn't exist")
	// ErrNotRegularFile marks a manifest path whose source is not a regular file.
	ErrNotRegularFile = errors.New("not a file")
)
