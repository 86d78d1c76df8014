// Package cfg
package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SERVER_MODE", "CACHE_ENGINE", "CACHE_DB", "PRICE_MAX_AGE", "PRICE_FETCH_TIMEOUT", "CALCULATOR_LOG"} {
		t.Setenv(key, "")
	}
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, ":3000", c.Port)
	assert.Equal(t, ModeDev, c.ServerMode)
	assert.Equal(t, "memory", c.CacheEngine)
	assert.Equal(t, 6*time.Hour, c.PriceMaxAge)
	assert.Equal(t, 10*time.Second, c.PriceFetchTimeout)
	assert.Equal(t, "calculator.log", c.LogFile)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("PORT", ":8080")
	t.Setenv("SERVER_MODE", ModeProduction)
	t.Setenv("CACHE_ENGINE", "redis")
	t.Setenv("CACHE_URI", "localhost:6379")
	t.Setenv("CACHE_DB", "2")
	t.Setenv("PRICE_MAX_AGE", "30m")
	t.Setenv("COIN_GECKO_KEY", "demo")

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Port)
	assert.Equal(t, "redis", c.CacheEngine)
	assert.Equal(t, 2, c.CacheDB)
	assert.Equal(t, 30*time.Minute, c.PriceMaxAge)
	assert.Equal(t, "demo", c.CoinGeckoAPIKey)
}

func TestNew_InvalidCacheDB(t *testing.T) {
	t.Setenv("CACHE_DB", "first")
	_, err := New()
	assert.Error(t, err)
}
