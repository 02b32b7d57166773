package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/flagx"
)

var knownFlags = []string{
	"-a", "-m", "-storage", "-d", "-s", "-t",
	"-stake", "-engine", "-vault", "-genesis", "-supply",
	"-u", "-p", "-b", "-g", "-e", "-otlp", "-log", "-debug",
}

// parseFlags populates Config from command-line flags:
//
//	-a string       gRPC bind address
//	-m string       metrics bind address
//	-storage string memory|postgres
//	-d string       PostgreSQL DSN
//	-s string       JWT secret key
//	-t int          access token validity, minutes
//	-stake int      stake required per listing, base units
//	-engine string  engine spender identity
//	-vault string   stake vault account
//	-genesis string genesis account
//	-supply int     genesis supply, base units
//	-u, -p, -b, -g, -e  S3 user, password, bucket, region, endpoint
//	-otlp string    OTLP/HTTP trace endpoint
//	-log string     slog|zap
//	-debug          debug logging
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics address")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	tokenMinutes := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.Int64Var(&cfg.StakeAmount, "stake", cfg.StakeAmount, "stake amount")
	fs.StringVar(&cfg.EngineAccount, "engine", cfg.EngineAccount, "engine account")
	fs.StringVar(&cfg.VaultAccount, "vault", cfg.VaultAccount, "vault account")
	fs.StringVar(&cfg.GenesisAccount, "genesis", cfg.GenesisAccount, "genesis account")
	fs.Int64Var(&cfg.GenesisSupply, "supply", cfg.GenesisSupply, "genesis supply")

	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&cfg.OTLPEndpoint, "otlp", cfg.OTLPEndpoint, "OTLP/HTTP endpoint")
	fs.StringVar(&cfg.LogBackend, "log", cfg.LogBackend, "log backend")
	fs.BoolVar(&cfg.LogDebug, "debug", cfg.LogDebug, "debug logging")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.AccessTokenValidityDuration = time.Duration(*tokenMinutes) * time.Minute
		}
	})
	return nil
}
