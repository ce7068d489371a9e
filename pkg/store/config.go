package store

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/moodlog/pkg/alert"
)

// ConfigPathEnv names a directory searched first for the .moodlog config file.
const ConfigPathEnv = "MOODLOG_CONFIG_PATH"

// Config locates the store and tunes the UI around it.
type Config interface {
	BasePath() string
	AlertDelay() time.Duration
}

// LoadConfig reads .moodlog.{yaml,json,toml} from $MOODLOG_CONFIG_PATH or the
// working directory, with MOODLOG_* environment overrides. A missing config
// file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.moodlog.db")
	v.SetDefault("alert_delay", alert.DefaultDelay.String())
	v.SetConfigName(".moodlog")
	v.SetEnvPrefix("MOODLOG")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{
		Path:  path,
		Delay: v.GetDuration("alert_delay"),
		File:  v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path  string        `json:"path"`
	Delay time.Duration `json:"alert_delay"`
	File  string        `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) AlertDelay() time.Duration {
	if f.Delay <= 0 {
		return alert.DefaultDelay
	}
	return f.Delay
}

// ConfigFile returns the config file viper read, or "" when defaults were used.
func ConfigFile(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.File
	}
	return ""
}
