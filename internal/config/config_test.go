package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/estate")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/estate")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPM", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.ServerPort)
	require.Equal(t, 2*time.Second, cfg.RequestTimeout)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, 300, cfg.RateLimitRPM)
}

func TestValidate(t *testing.T) {
	t.Run("requires database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		require.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("rejects inverted pool bounds", func(t *testing.T) {
		cfg := &Config{
			ServerPort:      "8080",
			RequestTimeout:  time.Second,
			DatabaseURL:     "postgres://x",
			DBMaxConns:      2,
			DBMinConns:      5,
			DefaultPageSize: 10,
			MaxPageSize:     20,
		}
		require.ErrorContains(t, cfg.Validate(), "DB_MIN_CONNS")
	})

	t.Run("rejects page size above max", func(t *testing.T) {
		cfg := &Config{
			ServerPort:      "8080",
			RequestTimeout:  time.Second,
			DatabaseURL:     "postgres://x",
			DBMaxConns:      2,
			DefaultPageSize: 50,
			MaxPageSize:     20,
		}
		require.ErrorContains(t, cfg.Validate(), "MAX_PAGE_SIZE")
	})
}
