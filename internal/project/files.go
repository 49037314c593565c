package project

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TypeDefinitionsFile is written next to tsconfig.json.
const TypeDefinitionsFile = "extension-env.d.ts"

// gitIgnoreLines are ensured in every project's .gitignore.
var gitIgnoreLines = []string{
	"# dependencies",
	"node_modules",
	"",
	"# testing",
	"coverage",
	"",
	"# production",
	"dist",
	"",
	"# misc",
	".DS_Store",
	"",
	"# local env files",
	".env.local",
	".env.development.local",
	".env.test.local",
	".env.production.local",
	"",
	"# lock files",
	"yarn.lock",
	"package-lock.json",
	"",
	"# debug files",
	"npm-debug.log*",
	"yarn-debug.log*",
	"yarn-error.log*",
	"",
	"# extension.js",
	"extension-env.d.ts",
}

// WriteReadme writes a README.md unless the template ships one. It reports
// whether a file was written.
func WriteReadme(projectPath, projectName string) (bool, error) {
	path := filepath.Join(projectPath, "README.md")
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	return true, writeRendered(path, "README.md", NewFileData(projectPath, projectName))
}

// WriteGitIgnore appends the standard lines missing from .gitignore,
// creating the file if needed. Comment and blank lines are only written
// together with the entries they introduce.
func WriteGitIgnore(projectPath string) error {
	path := filepath.Join(projectPath, ".gitignore")

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	present := make(map[string]bool)
	scanner := bufio.NewScanner(bytes.NewReader(existing))
	for scanner.Scan() {
		present[strings.TrimSpace(scanner.Text())] = true
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	var missing []string
	var header []string
	for _, line := range gitIgnoreLines {
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			header = append(header, line)
		case !present[line]:
			missing = append(missing, header...)
			missing = append(missing, line)
			header = nil
		default:
			header = nil
		}
	}
	missing = trimBlank(missing)
	if len(missing) == 0 {
		return nil
	}

	var b bytes.Buffer
	b.Write(existing)
	if len(existing) > 0 {
		if existing[len(existing)-1] != '\n' {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	for _, line := range missing {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return os.WriteFile(path, b.Bytes(), 0o644)
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteTypeDefinitions writes extension-env.d.ts for TypeScript projects,
// recognised by a tsconfig.json. It reports whether a file was written.
func WriteTypeDefinitions(projectPath string) (bool, error) {
	if !IsTypeScript(projectPath) {
		return false, nil
	}

	path := filepath.Join(projectPath, TypeDefinitionsFile)
	return true, writeRendered(path, TypeDefinitionsFile, NewFileData(projectPath, ""))
}

// IsTypeScript reports whether the project has a tsconfig.json.
func IsTypeScript(projectPath string) bool {
	_, err := os.Stat(filepath.Join(projectPath, "tsconfig.json"))
	return err == nil
}
