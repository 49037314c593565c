// Package cmdutil provides shared command utilities. It centralizes flag
// group management for commands that scaffold projects.
package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/extension-js/create/internal/messages"
)

// DefaultTemplate is the template used when --template is omitted.
const DefaultTemplate = messages.DefaultTemplate

// ScaffoldFlags holds the flags of commands that create a project.
type ScaffoldFlags struct {
	Template string
	Install  bool
	Git      bool
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", DefaultTemplate,
		"Template name, GitHub URL or ZIP archive URL")
	cmd.Flags().BoolVar(&f.Install, "install", false,
		"Install dependencies after creating the project")
	cmd.Flags().BoolVar(&f.Git, "git", true,
		"Initialize a git repository")
}

// TemplateOrDefault returns the template flag, falling back to the default
// when it was set to an empty string.
func (f *ScaffoldFlags) TemplateOrDefault() string {
	if t := strings.TrimSpace(f.Template); t != "" {
		return t
	}
	return DefaultTemplate
}

// ResolveProjectArg returns the project argument, or "" when none was given.
func ResolveProjectArg(args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	return ""
}
