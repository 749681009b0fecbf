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
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings for the menu store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig points at an optional TOML or CSV menu imported on startup.
// Replace clears the stored menu first instead of merging into it.
type CatalogConfig struct {
	Path    string `mapstructure:"path"`
	Replace bool   `mapstructure:"replace"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title          string `mapstructure:"title"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// LogConfig controls the log file. The terminal belongs to the UI.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix ORDERUP_.
func Load() (Config, error) {
	home := os.Getenv("HOME")
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "orderup", "menu.db"))
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.replace", false)
	v.SetDefault("ui.title", "Menu")
	v.SetDefault("ui.currency_symbol", "R")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "orderup", "orderup.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ORDERUP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "orderup"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ORDERUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config is fine; an explicit ORDERUP_CONFIG must exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path is where Save writes: $ORDERUP_CONFIG, or the default TOML file.
func Path() string {
	if p := os.Getenv("ORDERUP_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "orderup", "config.toml")
}

// Save writes cfg to Path, creating the directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("catalog.replace", cfg.Catalog.Replace)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
