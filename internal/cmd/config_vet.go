package cmd

import (
	"github.com/spf13/cobra"

	"github.com/extension-js/create/internal/config"
	oerrors "github.com/extension-js/create/internal/errors"
	"github.com/extension-js/create/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the create CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values pass validation after EXTENSION_* overrides are applied

The config path is resolved using precedence:
  --config flag > EXTENSION_CONFIG env > ~/.extension/config.yaml

Examples:
  # Validate default configuration
  create config vet

  # Validate custom config path
  create config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath := GetConfigPath()

	output.Debug("validating config", "path", configPath)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return err
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'create config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	if _, err := config.NewLoader().Load(configPath); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	output.Fprintln(cmd.OutOrStdout(), "Configuration is valid: "+configPath)
	return nil
}
