// Package digest maps logical asset paths to the content-addressed names used
// inside game archives.
package digest

import (
	"crypto/md5" //nolint:gosec // archive naming is MD5 based
	"encoding/hex"
)

// HexSize is the length of a hex-encoded digest.
const HexSize = md5.Size * 2

// Sum returns the MD5 of the raw bytes of path.
func Sum(path string) [md5.Size]byte {
	return md5.Sum([]byte(path)) //nolint:gosec
}

// Hex returns the lowercase hex MD5 of path.
func Hex(path string) string {
	sum := Sum(path)

	return hex.EncodeToString(sum[:])
}

// Valid reports whether stem is exactly HexSize hexadecimal characters.
// Upper-case digits are accepted, matching how archives are scanned.
func Valid(stem string) bool {
	if len(stem) != HexSize {
		return false
	}

	for i := range len(stem) {
		switch c := stem[i]; {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}

	return true
}
