package project

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInsideRepository(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	nested := filepath.Join(root, "packages", "my-extension")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.True(t, IsInsideRepository(root))
	assert.True(t, IsInsideRepository(nested))
}

func TestInitGit_SkipsExistingRepository(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	created, err := InitGit(context.Background(), root, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestInitGit_CreatesRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	if IsInsideRepository(dir) {
		t.Skip("temporary directory is inside a git repository")
	}

	created, err := InitGit(context.Background(), dir, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.True(t, created)
	assert.DirExists(t, filepath.Join(dir, ".git"))
	assert.True(t, IsInsideRepository(dir))
}
