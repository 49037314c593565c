package project

import (
	"context"
	"io"

	"github.com/extension-js/create/internal/output"
	"github.com/extension-js/create/internal/pkgmanager"
)

// InstallDependencies runs the project's package manager install command.
func InstallDependencies(ctx context.Context, projectPath string, stdout, stderr io.Writer) error {
	pm := pkgmanager.Resolve(projectPath)
	name, args := pkgmanager.InstallCommand(pm)

	output.Debug("installing dependencies", "manager", pm, "command", name, "args", args, "dir", projectPath)
	return runCommand(ctx, projectPath, name, args, stdout, stderr)
}
