package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/extension-js/create/internal/errors"
)

func TestCheckWritable(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, CheckWritable(dir))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, "probe file should be removed")
	})

	t.Run("missing nested directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b", "my-extension")
		require.NoError(t, CheckWritable(dir))
		assert.NoDirExists(t, dir)
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := CheckWritable(filepath.Join(file, "my-extension"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrPermission))
	})

	t.Run("read-only directory", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced for root")
		}
		dir := filepath.Join(t.TempDir(), "readonly")
		require.NoError(t, os.Mkdir(dir, 0o555))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		err := CheckWritable(filepath.Join(dir, "my-extension"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrPermission))
	})
}
