package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// StorageConfig selects and configures the slot store that persists
// console state such as notifications.
type StorageConfig struct {
	// Driver is one of "sqlite", "file", "keyring" or "memory".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the database file (sqlite), directory (file) or keyring
	// file-backend directory (keyring). Empty means a default under the
	// data directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme     string `mapstructure:"theme" yaml:"theme"`
	AdminUser string `mapstructure:"admin_user" yaml:"admin_user"`
}

// NotificationsConfig controls the notification store.
type NotificationsConfig struct {
	// SeedDefaults fills a fresh store with the example notifications
	// shown on first run.
	SeedDefaults bool `mapstructure:"seed_defaults" yaml:"seed_defaults"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage       StorageConfig       `mapstructure:"storage" yaml:"storage"`
	Display       DisplayConfig       `mapstructure:"display" yaml:"display"`
	Notifications NotificationsConfig `mapstructure:"notifications" yaml:"notifications"`
	Team          []TeamMember        `mapstructure:"team" yaml:"team"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/adminui/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "adminui", "config.yaml")
}

// DefaultDataDir returns the directory holding the database, slot files
// and logs, honoring XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "adminui")
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "adminui")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Driver: "sqlite",
		},
		Display: DisplayConfig{
			Theme:     "default",
			AdminUser: "admin",
		},
		Notifications: NotificationsConfig{
			SeedDefaults: true,
		},
		Team: []TeamMember{
			{Name: "Ada Lovelace", Role: "Engineering Lead", Email: "ada@example.com", Status: "active"},
			{Name: "Grace Hopper", Role: "Platform", Email: "grace@example.com", Status: "active"},
			{Name: "Alan Turing", Role: "Research", Email: "alan@example.com", Status: "away"},
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.admin_user", "admin")
	v.SetDefault("notifications.seed_defaults", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return DefaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultAppConfig()
	if v.IsSet("team") {
		// mapstructure merges into an existing slice; start from empty so
		// the file's roster replaces the example one.
		cfg.Team = nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch cfg.Storage.Driver {
	case "sqlite", "file", "keyring", "memory":
	default:
		return nil, fmt.Errorf("config %s: unknown storage driver %q", path, cfg.Storage.Driver)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("display", cfg.Display)
	v.Set("notifications", cfg.Notifications)
	v.Set("team", cfg.Team)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
