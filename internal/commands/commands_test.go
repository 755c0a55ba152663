package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arxide/arxide/internal/commands"
	"github.com/arxide/arxide/internal/config"
	"github.com/arxide/arxide/internal/digest"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()

	return out.String(), err
}

func TestEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	key := strings.Repeat("5c", 43)

	list := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte("data/a.txt\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "plain", "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain", "data", "a.txt"), []byte("hello"), 0o600))

	out, err := execute(t, "encrypt", "-k", key, "-l", list,
		filepath.Join(dir, "plain"), filepath.Join(dir, "archive"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "processed")

	_, err = os.Stat(filepath.Join(dir, "archive", digest.Hex("data/a.txt")+".bin"))
	require.NoError(t, err)

	// Root without a subcommand decrypts; the key comes from the environment.
	t.Setenv("ARXIDE_KEY", key)

	out, err = execute(t, "--stats", "-l", list, filepath.Join(dir, "archive"), filepath.Join(dir, "restored"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "Stats")

	got, err := os.ReadFile(filepath.Join(dir, "restored", "data", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestValidationErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "decrypt", "only-one-arg")
	require.Error(t, err)

	_, err = execute(t, "decrypt", "-k", "abc", dir, filepath.Join(dir, "out"))
	require.ErrorContains(t, err, "--key must be 86 characters long")

	_, err = execute(t, "decrypt", "-g", "unknown", dir, filepath.Join(dir, "out"))
	require.ErrorContains(t, err, "--game must be one of")
}
