// Package config provides configuration loading and management.
package config

import "time"

// DevelopmentEnv is the EXTENSION_ENV value that switches template
// acquisition to local example directories.
const DevelopmentEnv = "development"

// DefaultExamplesURL is the built-in examples repository bare template names resolve against.
const DefaultExamplesURL = "https://github.com/extension-js/examples/tree/main/examples"

// HTTPConfig contains settings for remote archive downloads.
type HTTPConfig struct {
	// MaxRedirects bounds the redirects followed for one download.
	// Env: EXTENSION_HTTP_MAXREDIRECTS, Default: 5
	MaxRedirects int `mapstructure:"maxRedirects" yaml:"maxRedirects" validate:"gte=0,lte=20"`

	// Timeout bounds one download, including the body. Zero disables it.
	// Env: EXTENSION_HTTP_TIMEOUT, Default: 60s
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`

	// MaxBytes bounds the size of one downloaded archive.
	// Env: EXTENSION_HTTP_MAXBYTES, Default: 104857600 (100 MiB)
	MaxBytes int64 `mapstructure:"maxBytes" yaml:"maxBytes" validate:"gte=0"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the create CLI configuration.
// Loaded from ~/.extension/config.yaml and EXTENSION_* environment variables.
type Config struct {
	// Env selects the runtime mode. "development" copies templates from ExamplesDir.
	// Env: EXTENSION_ENV
	Env string `mapstructure:"env" yaml:"env,omitempty"`

	// ExamplesURL is the repository path bare template names are joined to.
	// Env: EXTENSION_EXAMPLESURL
	ExamplesURL string `mapstructure:"examplesURL" yaml:"examplesURL" validate:"required,url"`

	// ExamplesDir holds local examples used in development mode. A relative
	// path is looked up in the working directory, then next to the executable.
	// Env: EXTENSION_EXAMPLESDIR, Default: examples
	ExamplesDir string `mapstructure:"examplesDir" yaml:"examplesDir" validate:"required"`

	// HTTP contains archive download settings.
	HTTP HTTPConfig `mapstructure:"http" yaml:"http"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `create config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		ExamplesURL: DefaultExamplesURL,
		ExamplesDir: "examples",
		HTTP: HTTPConfig{
			MaxRedirects: 5,
			Timeout:      60 * time.Second,
			MaxBytes:     100 << 20,
		},
	}
}

// Development reports whether templates should come from local examples.
func (c *Config) Development() bool {
	return c != nil && c.Env == DevelopmentEnv
}
