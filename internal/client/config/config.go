package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the market CLI.
type Config struct {
	ServerEndpointAddr  string        `env:"SERVER_ADDR"`
	DaemonURL           string        `env:"DAEMON_URL"`
	HealthCheckInterval time.Duration `env:"HEALTH_INTERVAL"`
	CachePath           string        `env:"CACHE_PATH"`
	DownloadDir         string        `env:"DOWNLOAD_DIR"`
	// AccessToken is optional; when empty the CLI prompts for it.
	AccessToken string `env:"ACCESS_TOKEN"`
	// Decimals is the display precision of token amounts.
	Decimals int `env:"DECIMALS"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DaemonURL = "http://localhost:5000"
	c.HealthCheckInterval = 3 * time.Second
	c.CachePath = "stakemarket.db"
	c.DownloadDir = "downloads"
	c.Decimals = 6
}

func (c *Config) Validate() error {
	if c.ServerEndpointAddr == "" {
		return fmt.Errorf("server address is required")
	}
	if c.HealthCheckInterval <= 0 {
		return fmt.Errorf("health check interval must be positive: %s", c.HealthCheckInterval)
	}
	if c.Decimals < 0 || c.Decimals > 18 {
		return fmt.Errorf("decimals out of range: %d", c.Decimals)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then STAKEMARKET_CLI_* environment variables, then flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
