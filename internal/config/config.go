package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ThemeConfig holds picker color configuration. Empty fields keep the
// preset's value.
type ThemeConfig struct {
	Preset  string `mapstructure:"preset"`
	Primary string `mapstructure:"primary"`
	Accent  string `mapstructure:"accent"`
	Danger  string `mapstructure:"danger"`
	Muted   string `mapstructure:"muted"`
}

// Config holds the application configuration.
type Config struct {
	OutDir   string      `mapstructure:"out_dir"`
	Editor   string      `mapstructure:"editor"`
	DebugLog string      `mapstructure:"debug_log"`
	Theme    ThemeConfig `mapstructure:"theme"`
}

// DefaultConfigDir returns the fallback config directory (~/.journal/).
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".journal")
	}
	return filepath.Join(home, ".journal")
}

// ExpandDir expands a leading ~ in dir.
func ExpandDir(dir string) (string, error) {
	return homedir.Expand(dir)
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("out_dir", ".")
	v.SetDefault("editor", "")
	v.SetDefault("debug_log", "")
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.danger", "")
	v.SetDefault("theme.muted", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "journal"))
		}
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: JOURNAL_OUT_DIR, JOURNAL_EDITOR, etc.
	v.SetEnvPrefix("JOURNAL")
	v.AutomaticEnv()

	// Read config file. Only a missing implicit file is ignored.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
