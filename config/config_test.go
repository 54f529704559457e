package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jack20410/CcardFinder/timezone"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "America/Chicago", cfg.DatabaseTimezone)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, int32(10), cfg.MaxConns)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("DATABASE_TIMEZONE", "America/New_York")
	t.Setenv("DATABASE_MAX_CONNS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
	assert.Equal(t, "America/New_York", cfg.DatabaseTimezone)
	assert.Equal(t, int32(25), cfg.MaxConns)
}

// A variable that is set but empty does not trigger the struct tag default,
// and time.LoadLocation("") resolves to UTC without error. Load must still
// come back with the Central default, never an empty zone.
func TestLoad_EmptyTimezoneUsesDefault(t *testing.T) {
	t.Setenv("DATABASE_TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, timezone.Central, cfg.DatabaseTimezone)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("DATABASE_TIMEZONE", "America/Nowhere")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "America/Nowhere")
}

func TestLoad_InvalidMaxConns(t *testing.T) {
	t.Setenv("DATABASE_MAX_CONNS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_MAX_CONNS")
}
