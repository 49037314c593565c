package template

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/testutil"
)

func TestParseGitHubURL(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantOwner  string
		wantRepo   string
		wantBranch string
		wantPath   string
		wantName   string
		wantClone  string
	}{
		{
			name:      "repository",
			url:       "https://github.com/acme/starter",
			wantOwner: "acme",
			wantRepo:  "starter",
			wantName:  "starter",
			wantClone: "https://github.com/acme/starter.git",
		},
		{
			name:      "repository with .git suffix",
			url:       "https://github.com/acme/starter.git",
			wantOwner: "acme",
			wantRepo:  "starter",
			wantName:  "starter.git",
			wantClone: "https://github.com/acme/starter.git",
		},
		{
			name:       "tree path",
			url:        "https://github.com/extension-js/examples/tree/main/examples/new",
			wantOwner:  "extension-js",
			wantRepo:   "examples",
			wantBranch: "main",
			wantPath:   "examples/new",
			wantName:   "new",
			wantClone:  "https://github.com/extension-js/examples.git",
		},
		{
			name:       "tree root with trailing slash",
			url:        "http://GitHub.com/acme/starter/tree/dev/",
			wantOwner:  "acme",
			wantRepo:   "starter",
			wantBranch: "dev",
			wantName:   "dev",
			wantClone:  "https://github.com/acme/starter.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseGitHubURL(tt.url)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOwner, ref.Owner)
			assert.Equal(t, tt.wantRepo, ref.Repo)
			assert.Equal(t, tt.wantBranch, ref.Branch)
			assert.Equal(t, tt.wantPath, ref.Path)
			assert.Equal(t, tt.wantName, ref.Name())
			assert.Equal(t, tt.wantClone, ref.CloneURL())
		})
	}
}

func TestParseGitHubURL_Invalid(t *testing.T) {
	for _, raw := range []string{
		"https://gitlab.com/acme/starter",
		"https://github.com/acme",
		"https://github.com/acme/starter/blob/main/README.md",
		"https://github.com/acme/starter/tree",
		"://bad",
	} {
		_, err := ParseGitHubURL(raw)
		assert.Error(t, err, raw)
	}
}

func TestGitHubRefString(t *testing.T) {
	ref, err := ParseGitHubURL("https://github.com/extension-js/examples/tree/main/examples/new")
	require.NoError(t, err)
	assert.Equal(t, "extension-js/examples@main:examples/new", ref.String())
}

func TestGoGitFetcher_RejectsNonGitHubURL(t *testing.T) {
	err := NewGoGitFetcher().Fetch(context.Background(), "https://example.com/a/b", t.TempDir(), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestCloneError(t *testing.T) {
	ref := &GitHubRef{Owner: "acme", Repo: "starter", Branch: "main"}

	notFound := cloneError(ref, fmt.Errorf("clone: %w", transport.ErrRepositoryNotFound))
	assert.True(t, errors.Is(notFound, oerrors.ErrNotFound))

	private := cloneError(ref, transport.ErrAuthenticationRequired)
	assert.True(t, errors.Is(private, oerrors.ErrNotFound))

	canceled := cloneError(ref, context.Canceled)
	assert.Same(t, context.Canceled, canceled)

	network := cloneError(ref, errors.New("dial tcp: i/o timeout"))
	assert.True(t, errors.Is(network, oerrors.ErrConnectivity))
	assert.Contains(t, oerrors.Message(network), "acme/starter@main")
}

// localRepository commits files into <base>/<owner>/<repo> and returns a
// fetcher cloning from base.
func localRepository(t *testing.T, owner, repo string, files map[string]string) *GoGitFetcher {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	base := t.TempDir()
	dir := filepath.Join(base, owner, repo)
	r, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	testutil.WriteTree(t, dir, files)

	wt, err := r.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&git.AddOptions{All: true}))
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return &GoGitFetcher{baseURL: "file://" + filepath.ToSlash(base)}
}

func TestGoGitFetcher_FetchSubPath(t *testing.T) {
	fetcher := localRepository(t, "acme", "starters", map[string]string{
		"README.md":                   "root",
		"examples/react/package.json": `{"name":"react"}`,
		"examples/react/src/index.js": "export {}",
		"examples/vue/package.json":   `{"name":"vue"}`,
	})

	dest := t.TempDir()
	var stdout bytes.Buffer
	err := fetcher.Fetch(context.Background(),
		"https://github.com/acme/starters/tree/master/examples/react", dest, &stdout, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, []string{"react/package.json", "react/src/index.js"}, testutil.ListTree(t, dest))
	assert.Contains(t, stdout.String(), "Fetching acme/starters@master:examples/react")

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	require.Len(t, entries, 1, "clone directory must be removed")
	assert.Equal(t, "react", entries[0].Name())
}

func TestGoGitFetcher_FetchWholeRepository(t *testing.T) {
	fetcher := localRepository(t, "acme", "starter", map[string]string{
		"package.json":  `{"name":"starter"}`,
		"manifest.json": `{"name":"starter"}`,
	})

	dest := t.TempDir()
	err := fetcher.Fetch(context.Background(), "https://github.com/acme/starter", dest, io.Discard, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, []string{"starter/manifest.json", "starter/package.json"}, testutil.ListTree(t, dest))
	assert.NoDirExists(t, filepath.Join(dest, "starter", ".git"))
}

func TestGoGitFetcher_MissingPath(t *testing.T) {
	fetcher := localRepository(t, "acme", "starters", map[string]string{
		"examples/react/package.json": "{}",
	})

	dest := t.TempDir()
	err := fetcher.Fetch(context.Background(),
		"https://github.com/acme/starters/tree/master/examples/svelte", dest, io.Discard, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
