// Package config layers runtime configuration: defaults, then an
// optional YAML config file, then BALANCELOG_* environment variables
// (a .env file is honored when present), then command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	// Lang selects the narrative language, "en" by default.
	Lang string
	// Listen is the HTTP server bind address.
	Listen string
	// Debug enables verbose logging and row dumps.
	Debug bool
}

// Build assembles the configuration. An explicitly named config file
// must exist; the default search (balancelog.yaml in the working
// directory) is allowed to come up empty.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("lang", "en")
	v.SetDefault("listen", "0.0.0.0:3000")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("BALANCELOG")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("balancelog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	return &Config{
		Lang:   v.GetString("lang"),
		Listen: v.GetString("listen"),
		Debug:  v.GetBool("debug"),
	}, nil
}
