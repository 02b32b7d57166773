package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/stakemarket/internal/flagx"
	"github.com/dmitrijs2005/stakemarket/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config file.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	DaemonURL           string         `json:"daemon_url"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	CachePath           string         `json:"cache_path"`
	DownloadDir         string         `json:"download_dir"`
	AccessToken         string         `json:"access_token"`
	Decimals            int            `json:"decimals"`
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

	jc := JsonConfig{
		ServerEndpointAddr:  cfg.ServerEndpointAddr,
		DaemonURL:           cfg.DaemonURL,
		HealthCheckInterval: timex.Duration{Duration: cfg.HealthCheckInterval},
		CachePath:           cfg.CachePath,
		DownloadDir:         cfg.DownloadDir,
		AccessToken:         cfg.AccessToken,
		Decimals:            cfg.Decimals,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.DaemonURL = jc.DaemonURL
	cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	cfg.CachePath = jc.CachePath
	cfg.DownloadDir = jc.DownloadDir
	cfg.AccessToken = jc.AccessToken
	cfg.Decimals = jc.Decimals
	return nil
}
