// Package project implements the steps that turn an imported template into
// a ready-to-use extension project.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/extension-js/create/internal/errors"
)

// CheckWritable reports whether a project can be created at projectPath.
// The nearest existing ancestor is probed with a temporary file. A denied
// probe is returned as a permission error; anything else is returned as is.
func CheckWritable(projectPath string) error {
	dir, err := nearestExisting(projectPath)
	if err != nil {
		return err
	}

	probe, err := os.CreateTemp(dir, ".extension-write-check-")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return oerrors.NewPermissionError("destination is not writeable", dir, err)
		}
		return fmt.Errorf("probing %s: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// nearestExisting walks up from path to the first directory that exists.
func nearestExisting(path string) (string, error) {
	dir := filepath.Clean(path)
	for {
		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			return dir, nil
		case err == nil:
			return "", oerrors.NewPermissionError("destination is inside a file", dir, fs.ErrExist)
		case errors.Is(err, fs.ErrPermission):
			return "", oerrors.NewPermissionError("destination is not accessible", dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no existing ancestor for %s", path)
		}
		dir = parent
	}
}
