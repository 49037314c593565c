package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"

	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/fileutils"
	"github.com/extension-js/create/internal/output"
)

// GitFetcher fetches a directory out of a git hosting URL.
//
// Fetch places the fetched tree at dest/<last segment of url>. Progress and
// diagnostics go to stdout and stderr; callers may decorate those writers.
type GitFetcher interface {
	Fetch(ctx context.Context, url, dest string, stdout, stderr io.Writer) error
}

// GitHubRef is a parsed https://github.com/<owner>/<repo>[/tree/<ref>/<path>] URL.
type GitHubRef struct {
	Owner  string
	Repo   string
	Branch string
	Path   string

	name string
}

// ParseGitHubURL parses a GitHub repository or tree URL.
func ParseGitHubURL(raw string) (*GitHubRef, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing GitHub URL %q: %w", raw, err)
	}
	if !strings.EqualFold(u.Hostname(), "github.com") {
		return nil, fmt.Errorf("not a GitHub URL: %s", raw)
	}

	trimmed := strings.Trim(u.Path, "/")
	segments := strings.Split(trimmed, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return nil, fmt.Errorf("GitHub URL must name an owner and repository: %s", raw)
	}

	ref := &GitHubRef{
		Owner: segments[0],
		Repo:  strings.TrimSuffix(segments[1], ".git"),
		name:  pathName(u.Path),
	}

	rest := segments[2:]
	if len(rest) == 0 {
		return ref, nil
	}
	if rest[0] != "tree" || len(rest) < 2 {
		return nil, fmt.Errorf("unsupported GitHub URL (expected /tree/<ref>/<path>): %s", raw)
	}
	ref.Branch = rest[1]
	ref.Path = strings.Join(rest[2:], "/")

	return ref, nil
}

// CloneURL returns the HTTPS clone URL of the repository.
func (r *GitHubRef) CloneURL() string {
	return fmt.Sprintf("https://github.com/%s/%s.git", r.Owner, r.Repo)
}

// Name is the directory name the fetched tree is placed under.
func (r *GitHubRef) Name() string {
	return r.name
}

func (r *GitHubRef) String() string {
	s := r.Owner + "/" + r.Repo
	if r.Branch != "" {
		s += "@" + r.Branch
	}
	if r.Path != "" {
		s += ":" + r.Path
	}
	return s
}

// GoGitFetcher fetches GitHub paths with a shallow in-process clone.
type GoGitFetcher struct {
	// baseURL replaces https://github.com when set.
	baseURL string
}

// NewGoGitFetcher creates a GoGitFetcher.
func NewGoGitFetcher() *GoGitFetcher {
	return &GoGitFetcher{}
}

// Fetch implements GitFetcher.
func (f *GoGitFetcher) Fetch(ctx context.Context, rawURL, dest string, stdout, stderr io.Writer) error {
	ref, err := ParseGitHubURL(rawURL)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "", "Use a URL like https://github.com/<owner>/<repo>/tree/<branch>/<path>.")
	}

	cloneDir, err := os.MkdirTemp(dest, ".clone-")
	if err != nil {
		return fmt.Errorf("creating clone directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(cloneDir); rmErr != nil {
			output.Debug("removing clone directory", "path", cloneDir, "error", rmErr)
		}
	}()

	opts := &git.CloneOptions{
		URL:      f.cloneURL(ref),
		Depth:    1,
		Tags:     git.NoTags,
		Progress: stderr,
	}
	if ref.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref.Branch)
		opts.SingleBranch = true
	}

	output.Debug("cloning template", "repo", ref.String(), "url", opts.URL)
	fmt.Fprintf(stdout, "Fetching %s\n", ref)

	if _, err := git.PlainCloneContext(ctx, cloneDir, false, opts); err != nil {
		return cloneError(ref, err)
	}

	srcDir := cloneDir
	if ref.Path != "" {
		srcDir = filepath.Join(cloneDir, filepath.FromSlash(ref.Path))
	}
	if !fileutils.DirectoryExists(srcDir) {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("path %q not found in %s/%s", ref.Path, ref.Owner, ref.Repo),
			rawURL,
			"Check the template name against the examples repository.",
		)
	}
	if err := os.RemoveAll(filepath.Join(srcDir, ".git")); err != nil {
		return fmt.Errorf("removing git metadata: %w", err)
	}

	return fileutils.MoveContents(srcDir, filepath.Join(dest, ref.Name()))
}

func (f *GoGitFetcher) cloneURL(ref *GitHubRef) string {
	if f.baseURL == "" {
		return ref.CloneURL()
	}
	return strings.TrimRight(f.baseURL, "/") + "/" + ref.Owner + "/" + ref.Repo
}

func cloneError(ref *GitHubRef, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, transport.ErrRepositoryNotFound) || errors.Is(err, transport.ErrAuthenticationRequired) {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("repository %s/%s not found", ref.Owner, ref.Repo),
			ref.CloneURL(),
			"Private repositories are not supported as templates.",
		)
	}
	var noMatch git.NoMatchingRefSpecError
	if errors.Is(err, plumbing.ErrReferenceNotFound) || errors.As(err, &noMatch) {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("branch %q not found in %s/%s", ref.Branch, ref.Owner, ref.Repo),
			ref.CloneURL(),
			"",
		)
	}
	return oerrors.NewConnectivityError(
		fmt.Sprintf("cloning %s failed", ref),
		map[string]string{"Repository": ref.CloneURL()},
		err,
	)
}
