package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/roster"
)

func TestRead(t *testing.T) {
	names, err := roster.Read(strings.NewReader("Alice\n\n  Bob  \r\n\t\nCarol"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)

	names, err = roster.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice\nBob\n"), 0644))

	names, err := roster.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)

	_, err = roster.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bot10.py", "bot2.py", "bot1", ".hidden", "alpha.tar.gz"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	names, err := roster.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.tar", "bot1", "bot2", "bot10"}, names)
}
