package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
}

func TestCopyDir_PreservesSymlinks(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "manifest.json"), `{"name":"x"}`)
	writeFile(t, filepath.Join(src, "src", "background.ts"), "console.log(1)")
	require.NoError(t, os.Symlink("src/background.ts", filepath.Join(src, "entry.ts")))
	require.NoError(t, os.Symlink("/nonexistent/target", filepath.Join(src, "dangling")))

	require.NoError(t, CopyDir(src, dst))

	assert.Equal(t, `{"name":"x"}`, readFile(t, filepath.Join(dst, "manifest.json")))
	assert.Equal(t, "console.log(1)", readFile(t, filepath.Join(dst, "src", "background.ts")))

	info, err := os.Lstat(filepath.Join(dst, "entry.ts"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "symlink must be copied as a link")
	target, err := os.Readlink(filepath.Join(dst, "entry.ts"))
	require.NoError(t, err)
	assert.Equal(t, "src/background.ts", target)

	target, err = os.Readlink(filepath.Join(dst, "dangling"))
	require.NoError(t, err)
	assert.Equal(t, "/nonexistent/target", target)
}

func TestCopyDir_RejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, file, "x")

	assert.Error(t, CopyDir(file, t.TempDir()))
}

func TestCopyDir_MissingSource(t *testing.T) {
	err := CopyDir(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.True(t, os.IsNotExist(err))
}

func TestMoveContents(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeFile(t, filepath.Join(src, "package.json"), "new")
	writeFile(t, filepath.Join(src, "src", "content.ts"), "content")
	writeFile(t, filepath.Join(dst, "package.json"), "old")
	writeFile(t, filepath.Join(dst, "src", "keep.ts"), "keep")

	require.NoError(t, MoveContents(src, dst))

	assert.Equal(t, "new", readFile(t, filepath.Join(dst, "package.json")), "files are replaced")
	assert.Equal(t, "content", readFile(t, filepath.Join(dst, "src", "content.ts")))
	assert.Equal(t, "keep", readFile(t, filepath.Join(dst, "src", "keep.ts")), "directories are merged")

	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	assert.Empty(t, entries, "source is drained")
}

func TestMoveContents_CreatesDestination(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "a", "b")
	writeFile(t, filepath.Join(src, "README.md"), "# hi")

	require.NoError(t, MoveContents(src, dst))
	assert.Equal(t, "# hi", readFile(t, filepath.Join(dst, "README.md")))
	assert.NoDirExists(t, filepath.Join(dst, filepath.Base(src)), "no nesting directory")
}

func TestCopyEntry_FallbackCopiesTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "copy")
	writeFile(t, filepath.Join(src, "icons", "16.png"), "png")

	entries, err := os.ReadDir(filepath.Dir(src))
	require.NoError(t, err)
	var entry os.DirEntry
	for _, e := range entries {
		if e.Name() == filepath.Base(src) {
			entry = e
		}
	}
	require.NotNil(t, entry)

	require.NoError(t, copyPath(src, dst, entry))
	assert.Equal(t, "png", readFile(t, filepath.Join(dst, "icons", "16.png")))
}
