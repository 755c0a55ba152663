package keystream

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// SecretSize is the only accepted secret length.
const SecretSize = 43

// Secret is an immutable 43-byte keystream secret.
type Secret [SecretSize]byte

// NewSecret copies b into a Secret. Any length other than SecretSize is rejected.
func NewSecret(b []byte) (Secret, error) {
	var s Secret

	if len(b) != SecretSize {
		return s, &SecretLengthError{Expected: SecretSize, Actual: len(b)}
	}

	copy(s[:], b)

	return s, nil
}

// SecretFromHex decodes a hex-encoded secret.
func SecretFromHex(encoded string) (Secret, error) {
	b, err := hex.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return Secret{}, fmt.Errorf("decoding hex secret: %w", err)
	}

	return NewSecret(b)
}
