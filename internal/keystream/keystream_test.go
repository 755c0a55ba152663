package keystream_test

import (
	"bytes"
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"os"
	"testing"
	"testing/iotest"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arxide/arxide/internal/keystream"
)

// Vector is a known-answer case from testdata/vectors.yml.
type Vector struct {
	Description string `yaml:"description"`
	Path        string `yaml:"path"`
	Seed        string `yaml:"seed"`
	Start       int    `yaml:"start"`
	Plaintext   string `yaml:"plaintext"`
	Ciphertext  string `yaml:"ciphertext"`
}

func loadVectors(t *testing.T) []Vector {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	require.NoError(t, err)

	var vectors []Vector
	require.NoError(t, yaml.Unmarshal(data, &vectors))
	require.NotEmpty(t, vectors)

	return vectors
}

func sequentialSecret(t *testing.T) keystream.Secret {
	t.Helper()

	b := make([]byte, keystream.SecretSize)
	for i := range b {
		b[i] = byte(i + 1)
	}

	secret, err := keystream.NewSecret(b)
	require.NoError(t, err)

	return secret
}

func randomSecret(t *testing.T, rng *rand.Rand) keystream.Secret {
	t.Helper()

	b := make([]byte, keystream.SecretSize)
	rng.Read(b)

	secret, err := keystream.NewSecret(b)
	require.NoError(t, err)

	return secret
}

func TestNewSecretLength(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 42, 44, 64} {
		_, err := keystream.NewSecret(make([]byte, size))
		require.ErrorIs(t, err, keystream.ErrInvalidSecretLength)

		var lengthErr *keystream.SecretLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, keystream.SecretSize, lengthErr.Expected)
		assert.Equal(t, size, lengthErr.Actual)
		assert.Contains(t, err.Error(), "expected 43")
	}

	_, err := keystream.NewSecret(make([]byte, keystream.SecretSize))
	require.NoError(t, err)
}

func TestSecretFromHex(t *testing.T) {
	t.Parallel()

	want := sequentialSecret(t)

	got, err := keystream.SecretFromHex(hex.EncodeToString(want[:]) + "\n")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = keystream.SecretFromHex("zz")
	require.Error(t, err)

	_, err = keystream.SecretFromHex("0102")
	require.ErrorIs(t, err, keystream.ErrInvalidSecretLength)
}

func TestKnownVectors(t *testing.T) {
	t.Parallel()

	cipher := keystream.New(sequentialSecret(t))

	for _, vec := range loadVectors(t) {
		t.Run(vec.Description, func(t *testing.T) {
			t.Parallel()

			plaintext, err := hex.DecodeString(vec.Plaintext)
			require.NoError(t, err)

			want, err := hex.DecodeString(vec.Ciphertext)
			require.NoError(t, err)

			assert.Equal(t, vec.Start, keystream.StartIndex(vec.Seed))

			var out bytes.Buffer

			n, err := cipher.Apply(vec.Seed, bytes.NewReader(plaintext), &out)
			require.NoError(t, err)
			assert.Equal(t, int64(len(plaintext)), n)
			assert.Equal(t, want, out.Bytes())
		})
	}
}

// The seed is a hex digest string and is hashed a second time to pick the start.
func TestStartIndexRehashesSeed(t *testing.T) {
	t.Parallel()

	path := "a.txt"
	pathSum := md5.Sum([]byte(path)) //nolint:gosec
	seed := hex.EncodeToString(pathSum[:])

	seedSum := md5.Sum([]byte(seed)) //nolint:gosec
	assert.Equal(t, int(seedSum[7])%keystream.SecretSize, keystream.StartIndex(seed))

	// Hashing the raw digest bytes or the path itself gives a different start here.
	assert.NotEqual(t, int(pathSum[7])%keystream.SecretSize, keystream.StartIndex(seed))
}

func TestZeroSecretIsIdentity(t *testing.T) {
	t.Parallel()

	secret, err := keystream.NewSecret(make([]byte, keystream.SecretSize))
	require.NoError(t, err)

	var out bytes.Buffer

	_, err = keystream.New(secret).Apply("a5e54d1fd7bb69a228ef0dcd2431367e", bytes.NewReader([]byte{0x41}), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41}, out.Bytes())
}

func TestApplyIsInvolution(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(43)) //nolint:gosec

	for _, size := range []int{0, 1, 42, 43, 44, 1000, 100_000} {
		secret := randomSecret(t, rng)
		cipher := keystream.New(secret)

		input := make([]byte, size)
		rng.Read(input)

		seedBytes := make([]byte, md5.Size)
		rng.Read(seedBytes)
		seed := hex.EncodeToString(seedBytes)

		var once, twice bytes.Buffer

		_, err := cipher.Apply(seed, bytes.NewReader(input), &once)
		require.NoError(t, err)

		_, err = cipher.Apply(seed, bytes.NewReader(once.Bytes()), &twice)
		require.NoError(t, err)

		assert.Equal(t, input, twice.Bytes(), "size %d", size)
	}
}

func TestApplyIndependentOfReadSize(t *testing.T) {
	t.Parallel()

	cipher := keystream.New(sequentialSecret(t))
	input := bytes.Repeat([]byte("chunked stream "), 500)
	seed := "93040fef36e22101ae877effa11698e1"

	var whole, oneByte bytes.Buffer

	_, err := cipher.Apply(seed, bytes.NewReader(input), &whole)
	require.NoError(t, err)

	_, err = cipher.Apply(seed, iotest.OneByteReader(bytes.NewReader(input)), &oneByte)
	require.NoError(t, err)

	assert.Equal(t, whole.Bytes(), oneByte.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestApplyReportsIOFailures(t *testing.T) {
	t.Parallel()

	cipher := keystream.New(sequentialSecret(t))

	_, err := cipher.Apply("seed", iotest.ErrReader(errors.New("boom")), &bytes.Buffer{})
	require.ErrorContains(t, err, "reading input")

	_, err = cipher.Apply("seed", bytes.NewReader([]byte("data")), failingWriter{})
	require.ErrorContains(t, err, "writing output")
}
