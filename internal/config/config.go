// Package config provides configuration management for the refrescante CLI
// using Viper. Configuration is optional: built-in defaults cover every
// setting, an optional .refrescante.yml in the working directory overrides
// them, and REFRESCANTE_* environment variables override the file.
//
// Configuration never changes the command contract itself. It supplies the
// components directory, the project manifest path, and logging defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/refrescante-ui/refrescante/internal/errors"
	"github.com/refrescante-ui/refrescante/internal/logging"
)

// Config is the resolved tool configuration.
type Config struct {
	Components ComponentsConfig `yaml:"components" mapstructure:"components"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// ComponentsConfig locates component artifacts within a project.
type ComponentsConfig struct {
	// Dir is the directory component boilerplate is placed in.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// Manifest is the path of the project manifest listing installed
	// components.
	Manifest string `yaml:"manifest" mapstructure:"manifest"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Default returns the built-in configuration used when no config file or
// environment overrides are present.
func Default() *Config {
	return &Config{
		Components: ComponentsConfig{
			Dir:      "components",
			Manifest: "refrescante.yml",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load resolves configuration from defaults, an optional config file, and
// REFRESCANTE_* environment variables, in increasing precedence. cfgFile
// overrides the default .refrescante.yml search; a missing default file is
// not an error, but an explicitly named one must exist.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("components.dir", defaults.Components.Dir)
	v.SetDefault("components.manifest", defaults.Components.Manifest)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".refrescante")
	}

	v.SetEnvPrefix("REFRESCANTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The default config file is optional.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, errors.NewConfigError("reading config file", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.NewConfigError("parsing config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the CLI cannot run with.
func (c *Config) Validate() error {
	if c.Components.Dir == "" {
		return errors.NewConfigError("components.dir must not be empty", nil)
	}
	if c.Components.Manifest == "" {
		return errors.NewConfigError("components.manifest must not be empty", nil)
	}
	if !logging.IsValidLevel(c.Log.Level) {
		return errors.NewConfigError("log.level must be one of debug, info, warn, error", nil)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.NewConfigError("log.format must be text or json", nil)
	}
	return nil
}
