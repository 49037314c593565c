package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/extension-js/create/internal/config"
	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/output"
)

const configHeader = `# create CLI configuration.
# Every key can be overridden with an EXTENSION_* environment variable,
# e.g. EXTENSION_EXAMPLESURL or EXTENSION_HTTP_TIMEOUT.
# A relative examplesDir is looked up in the working directory first,
# then next to the create executable.
`

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the create CLI configuration.

Writes ~/.extension/config.yaml (or the --config path) with the defaults:
  - examples repository bare template names resolve against
  - local examples directory used when EXTENSION_ENV=development; a
    relative path is looked up in the working directory, then next to
    the create executable
  - redirect limit, timeout and size limit for archive downloads

Examples:
  # Initialize configuration
  create config init

  # Overwrite existing configuration
  create config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := GetConfigPath()
	if configPath == "" {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	configPath, err := config.ExpandPath(configPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return err
	}
	if exists && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	// Secure permissions: directory 0700, file 0600
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.NewPermissionError("could not create configuration directory", filepath.Dir(configPath), err)
	}
	if err := os.WriteFile(configPath, append([]byte(configHeader), data...), 0o600); err != nil {
		return oerrors.NewPermissionError("could not write configuration", configPath, err)
	}

	out := cmd.OutOrStdout()
	output.Fprintln(out, "Configuration initialized at "+configPath)
	output.Fprintln(out, "Validate with: create config vet")

	return nil
}
