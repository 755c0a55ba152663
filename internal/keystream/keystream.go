package keystream

import (
	"crypto/md5" //nolint:gosec // archive format is keyed by MD5
	"errors"
	"fmt"
	"io"
)

// startByte is the position in MD5(seed) that selects the starting secret index.
const startByte = 7

// Cipher applies the keystream transform with a fixed secret.
type Cipher struct {
	secret Secret
}

// New creates a Cipher for the given secret.
func New(secret Secret) *Cipher {
	return &Cipher{secret: secret}
}

// StartIndex returns the secret index the keystream starts at for seed.
// The seed is hashed again here, so a hex digest seed is digested twice overall.
func StartIndex(seed string) int {
	sum := md5.Sum([]byte(seed)) //nolint:gosec

	return int(sum[startByte]) % SecretSize
}

// Apply streams reader through the keystream selected by seed into writer
// and returns the number of bytes written.
// Applying it twice with the same seed restores the original bytes.
func (c *Cipher) Apply(seed string, reader io.Reader, writer io.Writer) (int64, error) {
	bufp, ok := bufferPool.Get().(*[]byte)
	if !ok {
		return 0, errors.New("invalid buffer type from pool") //nolint:err113
	}

	defer bufferPool.Put(bufp)

	buf := *bufp
	index := StartIndex(seed)

	var written int64

	for {
		n, readErr := reader.Read(buf)
		if n > 0 {
			index = c.xor(buf[:n], index)

			w, err := writer.Write(buf[:n])
			written += int64(w)

			if err != nil {
				return written, fmt.Errorf("writing output: %w", err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return written, nil
		}

		if readErr != nil {
			return written, fmt.Errorf("reading input: %w", readErr)
		}
	}
}

// xor transforms chunk in place starting at index and returns the next index.
func (c *Cipher) xor(chunk []byte, index int) int {
	for i := range chunk {
		chunk[i] ^= c.secret[index]

		index++
		if index == SecretSize {
			index = 0
		}
	}

	return index
}
