package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	UI      UIConfig      `mapstructure:"ui"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds ERP backend configuration
type ServerConfig struct {
	URL      string `mapstructure:"url"`      // Backend base URL
	Token    string `mapstructure:"token"`    // API token
	Username string `mapstructure:"username"` // Display only
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme         string `mapstructure:"theme"`
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
}

// SearchConfig holds list search behavior
type SearchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Debounce returns the search debounce as a duration.
func (s SearchConfig) Debounce() time.Duration {
	if s.DebounceMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(s.DebounceMs) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{},
		UI: UIConfig{
			Theme:         "default",
			ShowStatusBar: true,
		},
		Search: SearchConfig{
			DebounceMs: 500,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "fleetdesk", "fleetdesk.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "fleetdesk", "fleetdesk.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "fleetdesk")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "fleetdesk")
	}
}

// DefaultPrefsPath returns the preference store directory for the current OS
func DefaultPrefsPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "fleetdesk", "prefs")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "fleetdesk", "prefs")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("FLEETDESK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to keep snake_case key names
	viper.Set("server.url", cfg.Server.URL)
	viper.Set("server.token", cfg.Server.Token)
	viper.Set("server.username", cfg.Server.Username)
	viper.Set("ui.theme", cfg.UI.Theme)
	viper.Set("ui.show_status_bar", cfg.UI.ShowStatusBar)
	viper.Set("search.debounce_ms", cfg.Search.DebounceMs)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveToken updates just the token in the configuration
func SaveToken(token string) error {
	viper.Set("server.token", token)

	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the backend URL and token are set
func (c *Config) IsConfigured() bool {
	return c.Server.URL != "" && c.Server.Token != ""
}
