// Package version provides version information for the create CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// GoGitModule is the module path of the embedded git implementation.
const GoGitModule = "github.com/go-git/go-git/v5"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// GoGitVersion is the go-git version used for template fetches.
	GoGitVersion string `json:"goGitVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:      Version,
		GitCommit:    GitCommit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		GoGitVersion: DependencyVersion(GoGitModule),
	}
}

// DependencyVersion returns the version of a module linked into the
// binary, or "unknown" when build information is unavailable.
func DependencyVersion(module string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return dependencyVersion(info, module)
}

func dependencyVersion(info *debug.BuildInfo, module string) string {
	for _, dep := range info.Deps {
		if dep.Path != module {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("create:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\ngo-git:\n  Version:  %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.GoGitVersion)
}
