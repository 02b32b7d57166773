package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("STAKEMARKET_STORAGE", "postgres")
	t.Setenv("STAKEMARKET_ACCESS_TOKEN_TTL", "2h")
	t.Setenv("STAKEMARKET_GENESIS_SUPPLY", "77")
	t.Setenv("STAKEMARKET_LOG_DEBUG", "true")

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, 2*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, int64(77), cfg.GenesisSupply)
	assert.True(t, cfg.LogDebug)
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("STAKEMARKET_STAKE_AMOUNT", "many")
	require.Error(t, parseEnv(&Config{}))
}
