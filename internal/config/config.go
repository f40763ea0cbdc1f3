// Package config loads command line settings from flags, the environment and
// an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to environment variable names, e.g.
	// SCHEMACONV_TYPE.
	EnvPrefix = "SCHEMACONV"

	fileName = ".schemaconv"
)

// Config holds the settings that may come from more than one source.
type Config struct {
	Type         string   `mapstructure:"type"`
	InputFormat  string   `mapstructure:"input_format"`
	OutputFormat string   `mapstructure:"output_format"`
	LogLevel     string   `mapstructure:"log_level"`
	LogFormat    string   `mapstructure:"log_format"`
	Definitions  []string `mapstructure:"definitions"`
}

// FlagKeys maps configuration keys to the flags that set them.
var FlagKeys = map[string]string{
	"type":          "type",
	"definitions":   "def",
	"input_format":  "input_format",
	"output_format": "output_format",
	"log_level":     "log_level",
	"log_format":    "log_format",
}

// Load merges, from highest to lowest precedence, explicitly set flags,
// SCHEMACONV_* environment variables, the configuration file and flag
// defaults. When configFile is empty, .schemaconv.yaml is looked up in the
// working directory and then in $HOME; a missing file is not an error.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range FlagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
