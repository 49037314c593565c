package cmd

import (
	"github.com/spf13/cobra"

	"github.com/extension-js/create/internal/output"
	"github.com/extension-js/create/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create CLI version information.

Displays:
  - CLI version, commit, build date and Go version
  - go-git version used for template fetches`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
	return nil
}
