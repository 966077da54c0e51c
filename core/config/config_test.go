package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "en:EN,de:DE,pl:PL", cfg.Sheets.Languages)
	assert.Equal(t, "pl", cfg.Sheets.BaseLanguage)
	assert.Equal(t, 30, cfg.Sheets.TimeoutSeconds)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "intl-messages.json", cfg.Catalog.Path)
	assert.Equal(t, "react-intl", cfg.Catalog.Format)
	assert.Equal(t, "service_account", cfg.Auth.Mode)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)

	// No spreadsheet id by default.
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SHEETS_SPREADSHEET_ID", "abc123")
	t.Setenv("SHEETS_LANGUAGES", "en:English,fr:French")
	t.Setenv("SHEETS_BASE_LANGUAGE", "en")
	t.Setenv("CATALOG_FORMAT", "go-i18n")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "en", cfg.Sheets.BaseLanguage)
	assert.Equal(t, "go-i18n", cfg.Catalog.Format)
	assert.True(t, cfg.Storage.UseSSL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHEETS_SPREADSHEET_ID=from-dotenv\n"), 0600))
	t.Setenv("SHEETS_SPREADSHEET_ID", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Sheets.SpreadsheetID)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		cfg.Sheets.SpreadsheetID = "abc"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Bad base language", func(c *Config) { c.Sheets.BaseLanguage = "xx" }},
		{"Bad auth mode", func(c *Config) { c.Auth.Mode = "anonymous" }},
		{"Bad catalog source", func(c *Config) { c.Catalog.Source = "ftp" }},
		{"Bad catalog format", func(c *Config) { c.Catalog.Format = "po" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
