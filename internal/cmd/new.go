package cmd

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/extension-js/create/internal/cmdutil"
	"github.com/extension-js/create/internal/config"
	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/fileutils"
	"github.com/extension-js/create/internal/messages"
	"github.com/extension-js/create/internal/output"
	"github.com/extension-js/create/internal/project"
	"github.com/extension-js/create/internal/template"
)

var urlPattern = regexp.MustCompile(`(?i)^https?://`)

// newImporter builds the template importer for a run. Tests replace it.
var newImporter = func(cfg *config.Config, stdout, stderr io.Writer) *template.Importer {
	return template.NewFromConfig(cfg, stdout, stderr)
}

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var sf cmdutil.ScaffoldFlags

	cmd := &cobra.Command{
		Use:   "new [project-name|project-path]",
		Short: "Create a new extension project",
		Long: `Create a new browser extension project.

The template can be a built-in example name, a GitHub repository path or
the URL of a ZIP archive.

Examples:
  # Create from the default template
  create new my-extension

  # Create from a built-in example
  create new my-extension --template react

  # Create from a GitHub path
  create new my-extension -t https://github.com/extension-js/examples/tree/main/examples/react

  # Create and install dependencies, without git
  create new my-extension --install --git=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args, &sf)
		},
	}

	sf.AddTo(cmd)

	return cmd
}

func runNew(cmd *cobra.Command, args []string, sf *cmdutil.ScaffoldFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	arg := cmdutil.ResolveProjectArg(args)
	if arg == "" {
		return reportError(stderr, messages.NoProjectName(),
			oerrors.NewValidationError("project name is required", "", "Pass a project name or path."), ExitValidationError)
	}
	if urlPattern.MatchString(arg) {
		return reportError(stderr, messages.NoURLAllowed(),
			oerrors.NewValidationError("project name cannot be a URL", "", "Use --template for remote templates."), ExitValidationError)
	}

	projectPath, err := filepath.Abs(arg)
	if err != nil {
		return reportError(stderr, messages.WritingDirectoryError(err), err, ExitGeneralError)
	}
	projectName := filepath.Base(projectPath)
	templateName := sf.TemplateOrDefault()

	output.Debug("creating project", "name", projectName, "path", projectPath, "template", templateName)
	output.Fprintln(stdout, messages.StartingNewExtension(projectName))

	if err := prepareDestination(stdout, stderr, projectPath, projectName); err != nil {
		return err
	}

	if err := newImporter(GetConfig(), stdout, stderr).Import(ctx, projectPath, projectName, templateName); err != nil {
		return &oerrors.ExitError{Err: err, Code: ExitCodeFromError(err), Printed: true}
	}

	output.Fprintln(stdout, messages.WritingPackageJSONMetadata())
	if err := project.WritePackageJSON(projectPath, projectName); err != nil {
		return reportError(stderr, messages.WritingPackageJSONMetadataError(projectName, err), err, 0)
	}

	if sf.Install {
		if err := installDependencies(ctx, stdout, stderr, projectPath, projectName); err != nil {
			return err
		}
	}

	output.Fprintln(stdout, messages.WritingReadmeMetadata())
	if _, err := project.WriteReadme(projectPath, projectName); err != nil {
		return reportError(stderr, messages.WritingReadmeMetadataError(projectName, err), err, 0)
	}

	output.Fprintln(stdout, messages.WritingManifestJSONMetadata())
	if _, err := project.WriteManifestJSON(projectPath, projectName); err != nil {
		return reportError(stderr, messages.WritingManifestJSONMetadataError(projectName, err), err, 0)
	}

	if sf.Git {
		if err := initGit(ctx, stdout, stderr, projectPath, projectName); err != nil {
			return err
		}
	}

	output.Fprintln(stdout, messages.WritingGitIgnore())
	if err := project.WriteGitIgnore(projectPath); err != nil {
		return reportError(stderr, messages.WritingGitIgnoreError(projectName, err), err, 0)
	}

	if project.IsTypeScript(projectPath) {
		output.Fprintln(stdout, messages.WritingTypeDefinitions(projectName))
		if _, err := project.WriteTypeDefinitions(projectPath); err != nil {
			return reportError(stderr, messages.WritingTypeDefinitionsError(err), err, 0)
		}
	}

	output.Fprintln(stdout, messages.SuccessfulInstall(projectPath, projectName))
	return nil
}

// prepareDestination checks writability and conflicts, then creates the
// project directory.
func prepareDestination(stdout, stderr io.Writer, projectPath, projectName string) error {
	output.Fprintln(stdout, messages.CheckingIfPathIsWriteable())
	if err := project.CheckWritable(projectPath); err != nil {
		if errors.Is(err, oerrors.ErrPermission) {
			return reportError(stderr, messages.DestinationNotWriteable(projectPath), err, ExitPermissionDenied)
		}
		return reportError(stderr, messages.WritingDirectoryError(err), err, 0)
	}

	output.Fprintln(stdout, messages.ScanningPossiblyConflictingFiles())
	conflicts, err := project.ScanConflicts(projectPath)
	if err != nil {
		return reportError(stderr, messages.WritingDirectoryError(err), err, 0)
	}
	if len(conflicts) > 0 {
		return reportError(stderr, messages.DirectoryHasConflicts(projectPath, conflicts),
			oerrors.Wrap(oerrors.ErrConflict, projectPath), ExitConflict)
	}

	output.Fprintln(stdout, messages.FolderExists(projectName))
	if err := fileutils.CreateDirectory(projectPath); err != nil {
		return reportError(stderr, messages.CreateDirectoryError(projectName, err), err, 0)
	}
	return nil
}

// commandOutput returns where child process output goes: the command's
// writers in verbose mode, nowhere otherwise.
func commandOutput(stdout, stderr io.Writer) (io.Writer, io.Writer) {
	if verboseFlag {
		return stdout, stderr
	}
	return io.Discard, io.Discard
}

func installDependencies(ctx context.Context, stdout, stderr io.Writer, projectPath, projectName string) error {
	output.Fprintln(stdout, messages.InstallingDependencies())

	childOut, childErr := commandOutput(stdout, stderr)
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		return project.InstallDependencies(ctx, projectPath, childOut, childErr)
	}, output.WithTitle("Installing dependencies..."))
	if err == nil {
		return nil
	}

	var cmdErr *project.CommandError
	var procErr *project.ProcessError
	switch {
	case errors.As(err, &cmdErr):
		return reportError(stderr, messages.InstallingDependenciesFailed(cmdErr.Command, cmdErr.Args, cmdErr.Code), err, ExitGeneralError)
	case errors.As(err, &procErr):
		return reportError(stderr, messages.InstallingDependenciesProcessError(projectName, procErr), err, ExitGeneralError)
	default:
		return reportError(stderr, messages.CantInstallDependencies(projectName, err), err, 0)
	}
}

func initGit(ctx context.Context, stdout, stderr io.Writer, projectPath, projectName string) error {
	output.Fprintln(stdout, messages.InitializingGitForRepository(projectName))

	childOut, childErr := commandOutput(stdout, stderr)
	_, err := project.InitGit(ctx, projectPath, childOut, childErr)
	if err == nil {
		return nil
	}

	var cmdErr *project.CommandError
	var procErr *project.ProcessError
	switch {
	case errors.As(err, &cmdErr):
		return reportError(stderr, messages.InitializingGitForRepositoryFailed(cmdErr.Command, cmdErr.Args, cmdErr.Code), err, ExitGeneralError)
	case errors.As(err, &procErr):
		return reportError(stderr, messages.InitializingGitForRepositoryProcessError(projectName, procErr), err, ExitGeneralError)
	default:
		return reportError(stderr, messages.InitializingGitForRepositoryError(projectName, err), err, 0)
	}
}
