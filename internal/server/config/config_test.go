package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, StorageMemory, c.Storage)
	assert.Equal(t, 24*time.Hour, c.AccessTokenValidityDuration)
	assert.Equal(t, int64(10_000_000), c.StakeAmount)
	assert.Equal(t, "market", c.EngineAccount)
	assert.Equal(t, "market:vault", c.VaultAccount)
	assert.Equal(t, "deployer", c.GenesisAccount)
	assert.Equal(t, "content", c.S3Bucket)
	assert.Equal(t, "slog", c.LogBackend)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown storage", func(c *Config) { c.Storage = "redis" }},
		{"negative stake", func(c *Config) { c.StakeAmount = -1 }},
		{"negative supply", func(c *Config) { c.GenesisSupply = -5 }},
		{"missing engine", func(c *Config) { c.EngineAccount = "" }},
		{"vault equals engine", func(c *Config) { c.VaultAccount = c.EngineAccount }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc": ":7000",
		"stake_amount":       500,
		"storage":            "postgres",
	})
	t.Setenv("STAKEMARKET_STAKE_AMOUNT", "700")
	t.Setenv("STAKEMARKET_GRPC_ADDR", ":7001")

	cfg, err := LoadConfig([]string{"-c", path, "-a", ":7002"})
	require.NoError(t, err)

	assert.Equal(t, ":7002", cfg.EndpointAddrGRPC, "flags win over env")
	assert.Equal(t, int64(700), cfg.StakeAmount, "env wins over json")
	assert.Equal(t, StoragePostgres, cfg.Storage, "json wins over defaults")
	assert.Equal(t, "deployer", cfg.GenesisAccount)
}

func TestLoadConfig_InvalidResult(t *testing.T) {
	_, err := LoadConfig([]string{"-storage", "cassandra"})
	require.Error(t, err)
}
