// Package messages is the catalog of user-facing status and error text
// printed while a new extension is created. Every function returns a
// formatted string and has no side effects beyond the filesystem reads
// noted on DirectoryHasConflicts and SuccessfulInstall.
package messages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/output"
	"github.com/extension-js/create/internal/pkgmanager"
)

// DefaultTemplate is the template name rendered without a "from template" clause.
const DefaultTemplate = "init"

func errorLabel() string {
	return output.Red("ERROR")
}

func errorText(err error) string {
	return output.Red(oerrors.Message(err))
}

// DestinationNotWriteable reports a destination without write permission.
func DestinationNotWriteable(workingDir string) string {
	folder := filepath.Base(workingDir)

	return fmt.Sprintf("%s Failed to write in the destination directory.\n", errorLabel()) +
		output.Red("Path is not writable. Ensure you have write permissions for this folder.") +
		fmt.Sprintf("\n%s %s", output.Red("NOT WRITEABLE"), output.Underline(folder))
}

// DirectoryHasConflicts lists files under projectPath that would collide
// with the template. Each entry is checked with lstat; directories get a
// trailing slash.
func DirectoryHasConflicts(projectPath string, conflictingFiles []string) string {
	projectName := filepath.Base(projectPath)

	var b strings.Builder
	fmt.Fprintf(&b, "Conflict! Path to %s includes conflicting files.\n\n", output.Blue(projectName))

	for _, file := range conflictingFiles {
		display := file
		if info, err := os.Lstat(filepath.Join(projectPath, file)); err == nil && info.IsDir() {
			display = strings.TrimSuffix(file, "/") + "/"
		}
		fmt.Fprintf(&b, "   %s %s\n", output.Yellow("-"), output.Yellow(display))
	}

	b.WriteString("\n")
	b.WriteString(output.Red("You need to either rename/remove the files listed above, or choose a new directory name for your extension."))
	fmt.Fprintf(&b, "\n\nPath to conflicting directory: %s", output.Underline(projectPath))

	return b.String()
}

// NoProjectName reports a missing project name argument.
func NoProjectName() string {
	return fmt.Sprintf("%s You need to provide an extension name to create one. See %s for command info.",
		errorLabel(), output.Blue("--help"))
}

// NoURLAllowed reports a URL passed where a project path was expected.
func NoURLAllowed() string {
	return fmt.Sprintf("%s URLs are not allowed as a project path. Either write a name or a path to a local folder.", errorLabel())
}

// SuccessfulInstall renders the closing banner with next steps. The package
// manager is detected from the working directory and the invoking user agent.
func SuccessfulInstall(projectPath, projectName string) string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	relativePath, err := filepath.Rel(cwd, projectPath)
	if err != nil {
		relativePath = projectPath
	}

	detected, _ := pkgmanager.Detect(cwd)

	return successfulInstall(relativePath, projectName, detected, pkgmanager.UserAgent())
}

// suggestedCommands maps a package manager to its dev and install commands.
func suggestedCommands(detected pkgmanager.Name, userAgent string) (run, install string) {
	switch detected {
	case pkgmanager.Yarn:
		run, install = "yarn dev", "yarn"
	case pkgmanager.PNPM:
		run, install = "pnpm dev", "pnpm install"
	default:
		run, install = "npm run dev", "npm install"
	}

	// pnpx / pnpm dlx
	if strings.Contains(userAgent, "pnpm") {
		run, install = "pnpm dev", "pnpm install"
	}

	return run, install
}

func successfulInstall(relativePath, projectName string, detected pkgmanager.Name, userAgent string) string {
	run, install := suggestedCommands(detected, userAgent)

	return fmt.Sprintf("🧩 - %s Extension %s created.\n\n", output.Green("Success!"), output.Blue(projectName)) +
		"To get started developing your extension, do the following:\n\n" +
		fmt.Sprintf("   1. %s %s\n", output.Blue("cd"), output.Underline(relativePath)) +
		fmt.Sprintf("   2. %s to install dependencies\n", output.Blue(install)) +
		fmt.Sprintf("   3. %s to open a new browser instance with your extension loaded\n\n", output.Blue(run)) +
		fmt.Sprintf("%s. Time to hack on your extension!\n", output.Green("You are ready"))
}

// StartingNewExtension announces the create flow.
func StartingNewExtension(projectName string) string {
	return fmt.Sprintf("🐣 - Starting a new browser extension named %s...", output.Blue(projectName))
}

// CheckingIfPathIsWriteable announces the writability check.
func CheckingIfPathIsWriteable() string {
	return "🤞 - Checking if destination path is writeable..."
}

// ScanningPossiblyConflictingFiles announces the conflict scan.
func ScanningPossiblyConflictingFiles() string {
	return "🔎 - Scanning for potential conflicting files..."
}

// CreateDirectoryError reports a failed project directory creation.
func CreateDirectoryError(projectName string, err error) string {
	return fmt.Sprintf("%s Can't create directory %s.\n%s", errorLabel(), output.Blue(projectName), errorText(err))
}

// WritingTypeDefinitions announces the type definition step.
func WritingTypeDefinitions(projectName string) string {
	return fmt.Sprintf("🔷 - Writing type definitions for %s...", output.Blue(projectName))
}

// WritingTypeDefinitionsError reports a failed type definition write.
func WritingTypeDefinitionsError(err error) string {
	return fmt.Sprintf("%s Failed to write the extension type definition.\n%s", errorLabel(), errorText(err))
}

// InstallingFromTemplate announces template acquisition.
func InstallingFromTemplate(projectName, templateName string) string {
	if templateName == DefaultTemplate {
		return fmt.Sprintf("🧰 - Installing %s...", output.Blue(projectName))
	}

	return fmt.Sprintf("🧰 - Installing %s from template %s...", output.Blue(projectName), output.Yellow(templateName))
}

// InstallingFromTemplateError reports a failed template acquisition.
func InstallingFromTemplateError(projectName, template string, err error) string {
	return fmt.Sprintf("%s Can't find template %s for %s.\n%s",
		errorLabel(), output.Yellow(template), output.Blue(projectName), errorText(err))
}

// InitializingGitForRepository announces git initialization.
func InitializingGitForRepository(projectName string) string {
	return fmt.Sprintf("🌲 - Initializing git repository for %s...", output.Blue(projectName))
}

func commandFailed(command string, args []string, code int) string {
	return fmt.Sprintf("%s Command %s %s failed.\n%s",
		errorLabel(), output.Yellow(command), output.Yellow(strings.Join(args, " ")),
		output.Red("exit code "+output.Yellow(fmt.Sprint(code))))
}

// InitializingGitForRepositoryFailed reports git exiting with a non-zero code.
func InitializingGitForRepositoryFailed(command string, args []string, code int) string {
	return commandFailed(command, args, code)
}

// InitializingGitForRepositoryProcessError reports git failing to start.
func InitializingGitForRepositoryProcessError(projectName string, err error) string {
	return fmt.Sprintf("%s Child process error: Can't initialize %s for %s.\n%s",
		errorLabel(), output.Yellow("git"), output.Blue(projectName), errorText(err))
}

// InitializingGitForRepositoryError reports any other git initialization failure.
func InitializingGitForRepositoryError(projectName string, err error) string {
	return fmt.Sprintf("%s Can't initialize %s for %s.\n%s",
		errorLabel(), output.Yellow("git"), output.Blue(projectName), errorText(err))
}

// InstallingDependencies announces dependency installation.
func InstallingDependencies() string {
	return "🛠  - Installing dependencies... (takes a moment)"
}

// InstallingDependenciesFailed reports the package manager exiting with a non-zero code.
func InstallingDependenciesFailed(command string, args []string, code int) string {
	return commandFailed(command, args, code)
}

// InstallingDependenciesProcessError reports the package manager failing to start.
func InstallingDependenciesProcessError(projectName string, err error) string {
	return fmt.Sprintf("%s Child process error: Can't install dependencies for %s.\n%s",
		errorLabel(), output.Blue(projectName), errorText(err))
}

// CantInstallDependencies reports any other dependency installation failure.
func CantInstallDependencies(projectName string, err error) string {
	return fmt.Sprintf("%s Can't install dependencies for %s.\n%s",
		errorLabel(), output.Blue(projectName), errorText(err))
}

// WritingPackageJSONMetadata announces the package.json step.
func WritingPackageJSONMetadata() string {
	return fmt.Sprintf("📝 - Writing %s metadata...", output.Yellow("package.json"))
}

// WritingPackageJSONMetadataError reports a failed package.json write.
func WritingPackageJSONMetadataError(projectName string, err error) string {
	return fmt.Sprintf("%s Can't write %s for %s.\n%s",
		errorLabel(), output.Yellow("package.json"), output.Blue(projectName), errorText(err))
}

// WritingManifestJSONMetadata announces the manifest.json step.
func WritingManifestJSONMetadata() string {
	return fmt.Sprintf("📜 - Writing %s metadata...", output.Yellow("manifest.json"))
}

// WritingManifestJSONMetadataError reports a failed manifest.json write.
func WritingManifestJSONMetadataError(projectName string, err error) string {
	return fmt.Sprintf("%s Can't write %s for %s.\n%s",
		errorLabel(), output.Yellow("manifest.json"), output.Blue(projectName), errorText(err))
}

// WritingReadmeMetadata announces the README step.
func WritingReadmeMetadata() string {
	return fmt.Sprintf("📄 - Writing %s metadata...", output.Yellow("README.md"))
}

// WritingGitIgnore announces the .gitignore step.
func WritingGitIgnore() string {
	return fmt.Sprintf("🙈 - Writing %s lines...", output.Yellow(".gitignore"))
}

// WritingGitIgnoreError reports a failed .gitignore write.
func WritingGitIgnoreError(projectName string, err error) string {
	return fmt.Sprintf("%s Can't write the %s file for %s.\n%s",
		errorLabel(), output.Yellow(".gitignore"), output.Blue(projectName), errorText(err))
}

// WritingReadmeMetadataError reports a failed README write.
func WritingReadmeMetadataError(projectName string, err error) string {
	return fmt.Sprintf("%s Can't write the %s file for %s.\n%s",
		errorLabel(), output.Yellow("README.md"), output.Blue(projectName), errorText(err))
}

// FolderExists announces the project directory creation.
func FolderExists(projectName string) string {
	return fmt.Sprintf("🤝 - Ensuring %s folder exists...", output.Blue(projectName))
}

// WritingDirectoryError reports a failure while probing writability.
func WritingDirectoryError(err error) string {
	return fmt.Sprintf("%s Error while checking directory writability.\n%s", errorLabel(), errorText(err))
}

// CantSetupBuiltInTests reports a failed test scaffold.
func CantSetupBuiltInTests(projectName string, err error) string {
	return fmt.Sprintf("%s Can't setup built-in tests for %s.\n%s",
		errorLabel(), output.Yellow(projectName), errorText(err))
}
