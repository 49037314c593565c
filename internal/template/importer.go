package template

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/extension-js/create/internal/config"
	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/fileutils"
	"github.com/extension-js/create/internal/messages"
	"github.com/extension-js/create/internal/output"
)

// stagingPrefix names the per-import temporary directory.
const stagingPrefix = "extension-js-create-"

// Options configures an Importer. Zero values select defaults.
type Options struct {
	// ExamplesURL is joined with bare template names.
	ExamplesURL string

	// ExamplesDir holds local examples used in development mode. A relative
	// path is looked up in the working directory, then next to the executable.
	ExamplesDir string

	// Development copies templates from ExamplesDir instead of fetching them.
	Development bool

	// TempDir is where staging directories are created. Empty means os.TempDir.
	TempDir string

	Stdout io.Writer
	Stderr io.Writer

	Git      GitFetcher
	Archives ArchiveFetcher

	// NoisyLines are dropped from fetcher output.
	NoisyLines []*regexp.Regexp
}

// Importer places a template's files into a project directory.
type Importer struct {
	opts Options
}

// New creates an Importer.
func New(opts Options) *Importer {
	if opts.ExamplesURL == "" {
		opts.ExamplesURL = config.DefaultExamplesURL
	}
	if opts.ExamplesDir == "" {
		opts.ExamplesDir = "examples"
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Git == nil {
		opts.Git = NewGoGitFetcher()
	}
	if opts.Archives == nil {
		opts.Archives = NewHTTPArchiveFetcher(DefaultMaxRedirects, 0, DefaultMaxArchiveBytes)
	}
	if opts.NoisyLines == nil {
		opts.NoisyLines = output.NoisyFetchLines
	}
	return &Importer{opts: opts}
}

// NewFromConfig creates an Importer from loaded configuration.
func NewFromConfig(cfg *config.Config, stdout, stderr io.Writer) *Importer {
	return New(Options{
		ExamplesURL: cfg.ExamplesURL,
		ExamplesDir: cfg.ExamplesDir,
		Development: cfg.Development(),
		Stdout:      stdout,
		Stderr:      stderr,
		Archives:    NewHTTPArchiveFetcher(cfg.HTTP.MaxRedirects, cfg.HTTP.Timeout, cfg.HTTP.MaxBytes),
	})
}

// Import acquires the template named by identifier into projectPath,
// creating projectPath if needed. On failure a message is written to
// stderr and the error is returned unchanged.
func (i *Importer) Import(ctx context.Context, projectPath, projectName, identifier string) error {
	src := Classify(identifier, i.opts.ExamplesURL, i.opts.Development)
	output.Debug("importing template", "kind", src.Kind, "template", identifier, "path", projectPath)

	if err := i.importSource(ctx, projectPath, projectName, src); err != nil {
		output.Fprintln(i.opts.Stderr, messages.InstallingFromTemplateError(projectName, src.Name, err))
		return err
	}
	return nil
}

func (i *Importer) importSource(ctx context.Context, projectPath, projectName string, src Source) error {
	if err := fileutils.CreateDirectory(projectPath); err != nil {
		return fmt.Errorf("creating %s: %w", projectPath, err)
	}

	if src.Kind == KindLocalExample {
		output.Fprintln(i.opts.Stdout, messages.InstallingFromTemplate(projectName, src.Identifier))
		return i.copyLocal(src, projectPath)
	}

	stagingRoot, err := os.MkdirTemp(i.opts.TempDir, stagingPrefix)
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer removeStaging(stagingRoot)

	staging := filepath.Join(stagingRoot, projectName+"-temp")
	if err := fileutils.CreateDirectory(staging); err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}

	switch src.Kind {
	case KindArchive:
		return i.importArchive(ctx, src, staging, projectPath)
	default:
		output.Fprintln(i.opts.Stdout, messages.InstallingFromTemplate(projectName, src.Name))
		if err := i.fetchGit(ctx, src, staging); err != nil {
			return err
		}
		return fileutils.MoveContents(templateRoot(staging, src.Name), projectPath)
	}
}

func (i *Importer) copyLocal(src Source, projectPath string) error {
	dir := localExampleDir(i.opts.ExamplesDir, src.Name)
	if !fileutils.DirectoryExists(dir) {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("local example %q not found", src.Name),
			dir,
			"Set EXTENSION_EXAMPLESDIR to the examples checkout or unset EXTENSION_ENV.",
		)
	}
	return fileutils.CopyDir(dir, projectPath)
}

func (i *Importer) fetchGit(ctx context.Context, src Source, staging string) error {
	return output.WithFilteredOutput(i.opts.Stdout, i.opts.Stderr, i.opts.NoisyLines, func(stdout, stderr io.Writer) error {
		return i.opts.Git.Fetch(ctx, src.URL, staging, stdout, stderr)
	})
}

func (i *Importer) importArchive(ctx context.Context, src Source, staging, projectPath string) error {
	archive, err := i.opts.Archives.Download(ctx, src.URL)
	if err != nil {
		return err
	}
	if err := validateArchive(archive); err != nil {
		return err
	}
	if err := extractZip(archive.Data, staging); err != nil {
		return err
	}
	return fileutils.MoveContents(staging, projectPath)
}

// localExampleDir returns base/name. A relative base is tried against the
// working directory and then the executable's directory; the working
// directory form is returned when neither exists.
func localExampleDir(base, name string) string {
	dir := filepath.Join(base, name)
	if filepath.IsAbs(base) || fileutils.DirectoryExists(dir) {
		return dir
	}

	exe, err := os.Executable()
	if err != nil {
		return dir
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if candidate := filepath.Join(filepath.Dir(exe), dir); fileutils.DirectoryExists(candidate) {
		return candidate
	}
	return dir
}

// templateRoot prefers the subdirectory named after the template and
// falls back to the staging root.
func templateRoot(staging, name string) string {
	dir := filepath.Join(staging, name)
	if fileutils.DirectoryExists(dir) {
		return dir
	}
	return staging
}

func removeStaging(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		output.Debug("removing staging directory", "path", dir, "error", err)
	}
}
