package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/flagx"
)

var knownFlags = []string{"-a", "-daemon", "-i", "-cache", "-out", "-token", "-decimals"}

// parseFlags populates Config from command-line flags:
//
//	-a string        address:port of the market gRPC endpoint
//	-daemon string   compute daemon base URL
//	-i int           daemon health check interval, seconds
//	-cache string    sqlite cache path
//	-out string      download directory
//	-token string    access token
//	-decimals int    display decimals
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the server")
	fs.StringVar(&cfg.DaemonURL, "daemon", cfg.DaemonURL, "compute daemon URL")
	interval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	fs.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "local cache path")
	fs.StringVar(&cfg.DownloadDir, "out", cfg.DownloadDir, "download directory")
	fs.StringVar(&cfg.AccessToken, "token", cfg.AccessToken, "access token")
	fs.IntVar(&cfg.Decimals, "decimals", cfg.Decimals, "display decimals")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.HealthCheckInterval = time.Duration(*interval) * time.Second
		}
	})
	return nil
}
