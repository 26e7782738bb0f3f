package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Campaign         CampaignConfig
	Redis            RedisConfig
	DND5E            DND5EConfig
	SpellLibraryPath string // Optional: preload the spellbook from a JSON file
}

// CampaignConfig names the campaign to open and where file snapshots live
type CampaignConfig struct {
	Name    string
	DataDir string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: file storage is used when unset
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Campaign: CampaignConfig{
			Name:    getEnvOrDefault("CAMPAIGN_NAME", "Campaign"),
			DataDir: getEnvOrDefault("DATA_DIR", "data"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		DND5E: DND5EConfig{
			BaseURL:        getEnvOrDefault("DND5E_API_URL", "https://www.dnd5eapi.co/api"),
			TimeoutSeconds: getEnvAsIntOrDefault("DND5E_API_TIMEOUT", 5),
		},
		SpellLibraryPath: os.Getenv("SPELL_LIBRARY_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks for values no run could work with
func (c *Config) Validate() error {
	if c.Campaign.Name == "" {
		return fmt.Errorf("CAMPAIGN_NAME cannot be empty")
	}
	if c.DND5E.TimeoutSeconds < 1 {
		return fmt.Errorf("DND5E_API_TIMEOUT must be at least 1 second")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
