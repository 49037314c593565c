// Package pkgmanager detects which JavaScript package manager drives a project.
package pkgmanager

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Name identifies a package manager.
type Name string

// Known package managers.
const (
	NPM  Name = "npm"
	Yarn Name = "yarn"
	PNPM Name = "pnpm"
	Bun  Name = "bun"
)

// UserAgentEnv is set by npm, yarn, pnpm and bun when they spawn a script.
const UserAgentEnv = "npm_config_user_agent"

// lockfiles are checked in order inside each directory.
var lockfiles = []struct {
	file string
	name Name
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
	{"npm-shrinkwrap.json", NPM},
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
}

// Detect walks up from dir looking for a lockfile or a package.json
// "packageManager" field. It returns false when nothing is found.
func Detect(dir string) (Name, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, lf := range lockfiles {
			if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
				return lf.name, true
			}
		}

		if name, ok := fromPackageJSON(filepath.Join(dir, "package.json")); ok {
			return name, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// fromPackageJSON reads the corepack "packageManager" field, e.g. "pnpm@9.1.0".
func fromPackageJSON(path string) (Name, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	field := gjson.GetBytes(data, "packageManager")
	if !field.Exists() {
		return "", false
	}
	name, _, _ := strings.Cut(field.String(), "@")
	return parse(name)
}

// FromUserAgent parses a user agent such as "pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64".
func FromUserAgent(userAgent string) (Name, bool) {
	first, _, _ := strings.Cut(strings.TrimSpace(userAgent), " ")
	name, _, _ := strings.Cut(first, "/")
	return parse(name)
}

// UserAgent returns the package-manager user agent of the current process.
func UserAgent() string {
	return os.Getenv(UserAgentEnv)
}

func parse(s string) (Name, bool) {
	switch Name(strings.ToLower(s)) {
	case NPM:
		return NPM, true
	case Yarn:
		return Yarn, true
	case PNPM:
		return PNPM, true
	case Bun:
		return Bun, true
	default:
		return "", false
	}
}

// Resolve picks the package manager to use for a project: the invoking
// user agent first, then detection from dir, then npm.
func Resolve(dir string) Name {
	if name, ok := FromUserAgent(UserAgent()); ok {
		return name
	}
	if name, ok := Detect(dir); ok {
		return name
	}
	return NPM
}

// InstallCommand returns the binary and arguments that install dependencies.
func InstallCommand(name Name) (string, []string) {
	switch name {
	case Yarn:
		return "yarn", nil
	case PNPM:
		return "pnpm", []string{"install"}
	case Bun:
		return "bun", []string{"install"}
	default:
		return "npm", []string{"install"}
	}
}
