// Package config loads the backend configuration from an optional lumen.yaml
// plus LUMEN_* environment overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Addr     string
	LogLevel string
	PhotoDir string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("photo_dir", "./web/photos")

	v.SetEnvPrefix("LUMEN")
	v.AutomaticEnv()

	v.SetConfigName("lumen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; only a broken one is an error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Addr:     v.GetString("addr"),
		LogLevel: v.GetString("log_level"),
		PhotoDir: v.GetString("photo_dir"),
	}, nil
}
