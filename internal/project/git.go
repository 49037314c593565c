package project

import (
	"context"
	"errors"
	"io"

	"github.com/go-git/go-git/v5"

	"github.com/extension-js/create/internal/output"
)

// IsInsideRepository reports whether path or any parent holds a git repository.
func IsInsideRepository(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil && !errors.Is(err, git.ErrRepositoryNotExists) {
		output.Debug("probing for git repository", "path", path, "error", err)
	}
	return err == nil
}

// InitGit runs "git init" in projectPath unless it already belongs to a
// repository. It reports whether a repository was created.
func InitGit(ctx context.Context, projectPath string, stdout, stderr io.Writer) (bool, error) {
	if IsInsideRepository(projectPath) {
		output.Debug("skipping git init, already inside a repository", "path", projectPath)
		return false, nil
	}
	if err := runCommand(ctx, projectPath, "git", []string{"init", "--quiet"}, stdout, stderr); err != nil {
		return false, err
	}
	return true, nil
}
