package project

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/extension-js/create/internal/pkgmanager"
)

//go:embed files/*
var filesFS embed.FS

// FileData holds the data passed to generated project files.
type FileData struct {
	// ProjectName is the directory name of the project.
	ProjectName string

	// InstallCommand installs dependencies, e.g. "pnpm install".
	InstallCommand string

	// RunCommand prefixes package scripts, e.g. "npm run".
	RunCommand string
}

// NewFileData derives file data for a project, resolving its package manager.
func NewFileData(projectPath, projectName string) FileData {
	pm := pkgmanager.Resolve(projectPath)

	run := string(pm)
	if pm == pkgmanager.NPM {
		run = "npm run"
	}
	name, args := pkgmanager.InstallCommand(pm)

	return FileData{
		ProjectName:    projectName,
		InstallCommand: strings.TrimSpace(name + " " + strings.Join(args, " ")),
		RunCommand:     run,
	}
}

// renderFile renders the embedded files/<name>.tmpl.
func renderFile(name string, data FileData) ([]byte, error) {
	content, err := fs.ReadFile(filesFS, "files/"+name+".tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading %s template: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", name, err)
	}

	return buf.Bytes(), nil
}

// writeRendered renders name and writes it to path.
func writeRendered(path, name string, data FileData) error {
	content, err := renderFile(name, data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
