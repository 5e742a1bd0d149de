// Package config loads quizmastery settings from defaults, an optional YAML
// file, QUIZMASTERY_* environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "QUIZMASTERY"

// DefaultSetSize is the number of questions in a set when none is configured.
const DefaultSetSize = 10

type Config struct {
	DB       string    `mapstructure:"db"`
	Timezone string    `mapstructure:"timezone"`
	SetSize  int       `mapstructure:"set_size"`
	Registry string    `mapstructure:"registry"`
	Bank     string    `mapstructure:"bank"`
	Log      LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"timezone":  "timezone",
	"size":      "set_size",
	"registry":  "registry",
	"bank":      "bank",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("set_size", DefaultSetSize)
	v.SetDefault("registry", "")
	v.SetDefault("bank", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// Load resolves the configuration. path names a YAML file; when empty, a
// "config.yaml" in the current directory or $XDG_CONFIG_HOME/quizmastery is
// used if present. flags may be nil; only flags the user set override
// lower layers.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$XDG_CONFIG_HOME/quizmastery")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.SetSize <= 0 {
		return fmt.Errorf("set_size must be positive, got %d", c.SetSize)
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	return nil
}
