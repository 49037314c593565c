// Package fileutils holds the filesystem helpers used to stage and merge templates.
package fileutils

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DirectoryExists reports whether dir exists and is a directory.
func DirectoryExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// CreateDirectory creates dir and any missing parents. It is a no-op when dir exists.
func CreateDirectory(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// CopyDir copies the tree rooted at src into dst. Symbolic links are
// recreated as links, never followed. Existing files in dst are overwritten.
func CopyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		return copyEntry(path, filepath.Join(dst, rel), d)
	})
}

func copyEntry(from, to string, d fs.DirEntry) error {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		target, err := os.Readlink(from)
		if err != nil {
			return err
		}
		if err := os.RemoveAll(to); err != nil {
			return err
		}
		return os.Symlink(target, to)
	case d.IsDir():
		info, err := d.Info()
		if err != nil {
			return err
		}
		return os.MkdirAll(to, info.Mode().Perm()|0o700)
	default:
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(from, to, info.Mode().Perm())
	}
}

func copyFile(from, to string, perm fs.FileMode) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	// A symlink left at the target would redirect the write.
	if info, err := os.Lstat(to); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if err := os.Remove(to); err != nil {
			return err
		}
	}

	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// MoveContents moves every entry of src into dst without nesting src itself.
// Directories present on both sides are merged; other collisions are
// replaced by the entry from src. Renames that cross filesystems fall back
// to copy and delete.
func MoveContents(src, dst string) error {
	if err := CreateDirectory(dst); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		existing, err := os.Lstat(to)
		switch {
		case err == nil && existing.IsDir() && entry.IsDir():
			if err := MoveContents(from, to); err != nil {
				return err
			}
			if err := os.Remove(from); err != nil {
				return err
			}
			continue
		case err == nil:
			if err := os.RemoveAll(to); err != nil {
				return err
			}
		case !os.IsNotExist(err):
			return err
		}

		if err := os.Rename(from, to); err == nil {
			continue
		}
		if err := copyPath(from, to, entry); err != nil {
			return fmt.Errorf("moving %s: %w", entry.Name(), err)
		}
		if err := os.RemoveAll(from); err != nil {
			return err
		}
	}

	return nil
}

func copyPath(from, to string, entry fs.DirEntry) error {
	if entry.IsDir() {
		return CopyDir(from, to)
	}
	return copyEntry(from, to, entry)
}
