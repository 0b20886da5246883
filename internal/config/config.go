package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Provider  ProviderConfig  `mapstructure:"provider"`
	Review    ReviewConfig    `mapstructure:"review"`
	Redaction RedactionConfig `mapstructure:"redaction"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ProviderConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxTokens      int    `mapstructure:"max_tokens"`
}

type ReviewConfig struct {
	DiffMaxChars int `mapstructure:"diff_max_chars"`
}

type RedactionConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Defaults() Config {
	return Config{
		Provider: ProviderConfig{
			BaseURL:        "https://api.openai.com",
			Model:          "gpt-4o-mini",
			TimeoutSeconds: 120,
			MaxTokens:      2048,
		},
		Review: ReviewConfig{
			DiffMaxChars: 12000,
		},
		Redaction: RedactionConfig{Enabled: true},
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}

func Load(configPath string) (Config, error) {
	cfg := Defaults()

	if err := loadFile(configPath, &cfg); err != nil {
		return Config{}, err
	}

	// Secrets come from the environment, never from the config file on disk.
	if key := os.Getenv("REVIEWBOT_API_KEY"); key != "" {
		cfg.Provider.APIKey = key
	}

	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://api.openai.com"
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = "gpt-4o-mini"
	}
	if cfg.Provider.TimeoutSeconds <= 0 {
		cfg.Provider.TimeoutSeconds = 120
	}
	if cfg.Review.DiffMaxChars <= 0 {
		cfg.Review.DiffMaxChars = 12000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	return cfg, nil
}

func loadFile(configPath string, cfg *Config) error {
	path := configPath
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".reviewbot", "config.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}
