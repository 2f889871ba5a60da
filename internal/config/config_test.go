package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farmfresh/inventory-api/internal/config"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"DATABASE_URL": "",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DATABASE_URL":      "postgres://localhost:5432/farmfresh",
		"REDIS_URL":         "",
		"PORT":              "",
		"STOCK_CACHE_TTL":   "",
		"RATE_LIMIT_MAX":    "",
		"RATE_LIMIT_WINDOW": "",
	})
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.HTTPAddr())
	require.False(t, cfg.CacheEnabled())
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, 60, cfg.RateLimitMax)
	require.Equal(t, "30s", cfg.StockCacheTTL.String())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DATABASE_URL":    "postgres://localhost:5432/farmfresh",
		"REDIS_URL":       "redis://localhost:6379/0",
		"PORT":            ":9090",
		"STOCK_CACHE_TTL": "2m",
		"RATE_LIMIT_MAX":  "5",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.True(t, cfg.CacheEnabled())
	require.Equal(t, "2m0s", cfg.StockCacheTTL.String())
	require.Equal(t, 5, cfg.RateLimitMax)
}
