package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/scroll-portfolio/internal/section"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_PATH", "DEFAULT_SECTION", "ADMIN_USERNAME", "ADMIN_PASSWORD",
		"CORS_ORIGINS", "SESSION_CACHE_SIZE", "RETENTION_MONTHS", "TRACK_VISITORS",
	} {
		// Setenv registers the restore; Unsetenv then leaves the key absent.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, section.Home, cfg.DefaultSection)
	assert.Equal(t, 4096, cfg.SessionCacheSize)
	assert.Equal(t, 12, cfg.RetentionMonths)
	assert.True(t, cfg.TrackVisitors)
	assert.True(t, cfg.AdminDefaulted)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "./data/../data/site.db")
	t.Setenv("DEFAULT_SECTION", "Experience")
	t.Setenv("ADMIN_USERNAME", "zach")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SESSION_CACHE_SIZE", "64")
	t.Setenv("RETENTION_MONTHS", "6")
	t.Setenv("TRACK_VISITORS", "false")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "data/site.db", cfg.DBPath)
	assert.Equal(t, section.Experience, cfg.DefaultSection)
	assert.False(t, cfg.AdminDefaulted)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 64, cfg.SessionCacheSize)
	assert.Equal(t, 6, cfg.RetentionMonths)
	assert.False(t, cfg.TrackVisitors)
}

func TestLoadFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port not a number", key: "PORT", value: "http"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "db path current dir", key: "DB_PATH", value: "."},
		{name: "unknown section", key: "DEFAULT_SECTION", value: "blog"},
		{name: "blank section", key: "DEFAULT_SECTION", value: "  "},
		{name: "zero cache", key: "SESSION_CACHE_SIZE", value: "0"},
		{name: "bad bool", key: "TRACK_VISITORS", value: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}
