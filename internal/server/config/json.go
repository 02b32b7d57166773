package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/stakemarket/internal/flagx"
	"github.com/dmitrijs2005/stakemarket/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either "90s"-style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	MetricsAddr                 string         `json:"metrics_addr"`
	Storage                     string         `json:"storage"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	StakeAmount                 int64          `json:"stake_amount"`
	EngineAccount               string         `json:"engine_account"`
	VaultAccount                string         `json:"vault_account"`
	GenesisAccount              string         `json:"genesis_account"`
	GenesisSupply               int64          `json:"genesis_supply"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	PresignValidity             timex.Duration `json:"presign_validity"`
	OTLPEndpoint                string         `json:"otlp_endpoint"`
	LogBackend                  string         `json:"log_backend"`
	LogDebug                    bool           `json:"log_debug"`
}

func toJSON(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:            c.EndpointAddrGRPC,
		MetricsAddr:                 c.MetricsAddr,
		Storage:                     c.Storage,
		DatabaseDSN:                 c.DatabaseDSN,
		SecretKey:                   c.SecretKey,
		AccessTokenValidityDuration: timex.Duration{Duration: c.AccessTokenValidityDuration},
		StakeAmount:                 c.StakeAmount,
		EngineAccount:               c.EngineAccount,
		VaultAccount:                c.VaultAccount,
		GenesisAccount:              c.GenesisAccount,
		GenesisSupply:               c.GenesisSupply,
		S3RootUser:                  c.S3RootUser,
		S3RootPassword:              c.S3RootPassword,
		S3Bucket:                    c.S3Bucket,
		S3Region:                    c.S3Region,
		S3BaseEndpoint:              c.S3BaseEndpoint,
		PresignValidity:             timex.Duration{Duration: c.PresignValidity},
		OTLPEndpoint:                c.OTLPEndpoint,
		LogBackend:                  c.LogBackend,
		LogDebug:                    c.LogDebug,
	}
}

func (j *JsonConfig) apply(c *Config) {
	c.EndpointAddrGRPC = j.EndpointAddrGRPC
	c.MetricsAddr = j.MetricsAddr
	c.Storage = j.Storage
	c.DatabaseDSN = j.DatabaseDSN
	c.SecretKey = j.SecretKey
	c.AccessTokenValidityDuration = j.AccessTokenValidityDuration.Duration
	c.StakeAmount = j.StakeAmount
	c.EngineAccount = j.EngineAccount
	c.VaultAccount = j.VaultAccount
	c.GenesisAccount = j.GenesisAccount
	c.GenesisSupply = j.GenesisSupply
	c.S3RootUser = j.S3RootUser
	c.S3RootPassword = j.S3RootPassword
	c.S3Bucket = j.S3Bucket
	c.S3Region = j.S3Region
	c.S3BaseEndpoint = j.S3BaseEndpoint
	c.PresignValidity = j.PresignValidity.Duration
	c.OTLPEndpoint = j.OTLPEndpoint
	c.LogBackend = j.LogBackend
	c.LogDebug = j.LogDebug
}

// parseJSON overlays the file named by -c/-config. Keys missing from the
// file keep their current values.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	j := toJSON(cfg)
	if err := json.Unmarshal(data, j); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	j.apply(cfg)
	return nil
}
