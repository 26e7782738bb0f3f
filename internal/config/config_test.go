package config_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-session-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"CAMPAIGN_NAME", "DATA_DIR", "REDIS_URL",
		"DND5E_API_URL", "DND5E_API_TIMEOUT", "SPELL_LIBRARY_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Campaign", cfg.Campaign.Name)
	assert.Equal(t, "data", cfg.Campaign.DataDir)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "https://www.dnd5eapi.co/api", cfg.DND5E.BaseURL)
	assert.Equal(t, 5, cfg.DND5E.TimeoutSeconds)
	assert.Empty(t, cfg.SpellLibraryPath)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CAMPAIGN_NAME", "Curse of Strahd")
	t.Setenv("DATA_DIR", "/var/lib/tracker")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("DND5E_API_URL", "http://localhost:8080/api")
	t.Setenv("DND5E_API_TIMEOUT", "30")
	t.Setenv("SPELL_LIBRARY_PATH", "spells.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Curse of Strahd", cfg.Campaign.Name)
	assert.Equal(t, "/var/lib/tracker", cfg.Campaign.DataDir)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.Equal(t, "http://localhost:8080/api", cfg.DND5E.BaseURL)
	assert.Equal(t, 30, cfg.DND5E.TimeoutSeconds)
	assert.Equal(t, "spells.json", cfg.SpellLibraryPath)
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("DND5E_API_TIMEOUT", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DND5E.TimeoutSeconds)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		Campaign: config.CampaignConfig{Name: "Campaign"},
		DND5E:    config.DND5EConfig{TimeoutSeconds: 5},
	}
	require.NoError(t, cfg.Validate())

	cfg.DND5E.TimeoutSeconds = 0
	assert.Error(t, cfg.Validate())

	cfg.DND5E.TimeoutSeconds = 5
	cfg.Campaign.Name = ""
	assert.Error(t, cfg.Validate())
}
