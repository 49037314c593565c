package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// safeEntries may already exist in a destination without blocking creation.
var safeEntries = map[string]bool{
	".DS_Store":      true,
	".git":           true,
	".gitattributes": true,
	".gitignore":     true,
	".idea":          true,
	".vscode":        true,
	"Thumbs.db":      true,
	"LICENSE":        true,
}

var safePatterns = []string{
	"*.iml",
	"npm-debug.log*",
	"yarn-debug.log*",
	"yarn-error.log*",
}

// IsSafeEntry reports whether name is on the allowlist.
func IsSafeEntry(name string) bool {
	if safeEntries[name] {
		return true
	}
	for _, pattern := range safePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// ScanConflicts lists the top-level entries of projectPath that would
// collide with a template, sorted by name. A missing directory has none.
func ScanConflicts(projectPath string) ([]string, error) {
	entries, err := os.ReadDir(projectPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var conflicts []string
	for _, entry := range entries {
		if !IsSafeEntry(entry.Name()) {
			conflicts = append(conflicts, entry.Name())
		}
	}
	sort.Strings(conflicts)
	return conflicts, nil
}
