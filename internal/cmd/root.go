package cmd

import (
	"github.com/spf13/cobra"

	"github.com/extension-js/create/internal/config"
	"github.com/extension-js/create/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	loadedConfig *config.Config
)

// NewRootCmd creates the root command for the create CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create",
		Short: "Create browser extension projects",
		Long: `create scaffolds new browser extension projects from Extension.js
templates, GitHub repositories or remote ZIP archives.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: EXTENSION_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.SetupLogging(output.LogConfig{Verbose: verboseFlag})
		output.Error("loading configuration", "error", err)
		return NewExitError(err, ExitValidationError)
	}
	loadedConfig = cfg

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", GetConfigPath(),
		"env", cfg.Env,
		"examplesURL", cfg.ExamplesURL,
		"examplesDir", cfg.ExamplesDir,
	)

	return nil
}

// GetConfig returns the loaded configuration, or defaults when commands
// run without the root command.
func GetConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.DefaultConfig()
}

// GetConfigPath returns the config file path: --config flag, then
// EXTENSION_CONFIG, then ~/.extension/config.yaml.
func GetConfigPath() string {
	if configFlag != "" {
		return configFlag
	}
	path, err := config.GetConfigFile()
	if err != nil {
		output.Debug("resolving config path", "error", err)
		return ""
	}
	return path
}
