// Package config holds the runtime settings. There is deliberately no config
// file: everything is driven by RUNTREE_* environment variables on top of
// defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultPreviewLines = 40
	defaultLogLevel     = "info"
)

type Config struct {
	PreviewLines int
	LogLevel     string
	LogFile      string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RUNTREE")
	v.AutomaticEnv()

	v.SetDefault("preview_lines", defaultPreviewLines)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_file", defaultLogFile())
	for _, key := range []string{"preview_lines", "log_level", "log_file"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		PreviewLines: v.GetInt("preview_lines"),
		LogLevel:     v.GetString("log_level"),
		LogFile:      v.GetString("log_file"),
	}
	if cfg.PreviewLines < 1 {
		cfg.PreviewLines = defaultPreviewLines
	}
	return cfg, nil
}

func defaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "runtree", "runtree.log")
}
