// Package config provides configuration types and defaults for srplab.
package config

import (
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/dmercier/srplab/internal/errors"
)

// EnvPrefix is prepended to every environment variable override, e.g.
// SRPLAB_INVOICE_DESTINATION.
const EnvPrefix = "SRPLAB"

// UserConfig holds settings for the user-service demo.
type UserConfig struct {
	// Format selects the default detail representation, "console" or "json".
	Format string `mapstructure:"format"`
}

// InvoiceConfig holds settings for the invoice-pipeline demo.
type InvoiceConfig struct {
	// Destination is the delivery address for rendered invoices.
	Destination string `mapstructure:"destination"`

	// Format selects the default render format, "HTML", "PDF" or "CSV".
	Format string `mapstructure:"format"`

	// SampleAmount is the raw amount the demo feeds through the pipeline.
	SampleAmount float64 `mapstructure:"sample_amount"`
}

// Config holds all configuration options for srplab.
type Config struct {
	User    UserConfig    `mapstructure:"user"`
	Invoice InvoiceConfig `mapstructure:"invoice"`

	// NoColor disables ANSI styling in demo output.
	NoColor bool `mapstructure:"no_color"`

	// Verbose enables debug-level logging.
	Verbose bool `mapstructure:"verbose"`
}

// Defaults returns the configuration used when no file or environment
// override is present. The values mirror the canonical demo records.
func Defaults() Config {
	return Config{
		User: UserConfig{
			Format: "console",
		},
		Invoice: InvoiceConfig{
			Destination:  "customer@example.com",
			Format:       "HTML",
			SampleAmount: 700.0,
		},
		NoColor: false,
		Verbose: false,
	}
}

// Load resolves the effective configuration with the priority
// file < environment < defaults-for-missing-keys. An empty cfgFile skips
// file loading entirely.
//
// Parameters:
//   - cfgFile: Optional path to a YAML configuration file.
//
// Returns:
//   - Config: The resolved configuration.
//   - error: A ConfigError if the file exists but cannot be read or decoded.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("user.format", defaults.User.Format)
	v.SetDefault("invoice.destination", defaults.Invoice.Destination)
	v.SetDefault("invoice.format", defaults.Invoice.Format)
	v.SetDefault("invoice.sample_amount", defaults.Invoice.SampleAmount)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, apperrors.NewConfigError("reading config file %q: %v", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, apperrors.NewConfigError("decoding configuration: %v", err)
	}
	return cfg, nil
}
