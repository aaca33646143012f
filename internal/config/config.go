package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Colors   ColorConfig
}

// DatabaseConfig holds sqlite settings for the local history cache.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
}

// ColorConfig holds user color preferences as hex strings.
type ColorConfig struct {
	Text     string
	Added    string
	Deleted  string
	Modified string
}

// Load reads configuration from file and env. Env var overrides use prefix TAGVIEW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tagview", "history.db"))
	v.SetDefault("ui.date_format", "2006-01-02 15:04")
	v.SetDefault("colors.text", "#cdd6f4")
	v.SetDefault("colors.added", "#a6e3a1")
	v.SetDefault("colors.deleted", "#f38ba8")
	v.SetDefault("colors.modified", "#f9e2af")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TAGVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tagview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TAGVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the in-app preference editor.
func Save(cfg Config) error {
	path := os.Getenv("TAGVIEW_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tagview", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("colors.text", cfg.Colors.Text)
	v.Set("colors.added", cfg.Colors.Added)
	v.Set("colors.deleted", cfg.Colors.Deleted)
	v.Set("colors.modified", cfg.Colors.Modified)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
