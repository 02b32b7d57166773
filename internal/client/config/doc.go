// Package config loads runtime configuration for the market CLI.
//
// Sources, later ones overriding earlier:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. STAKEMARKET_CLI_* environment variables.
//  4. Command-line flags (see parseFlags).
//
// Durations in the JSON file accept "3s"-style strings or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "daemon_url": "http://localhost:5000",
//	  "health_check_interval": "3s",
//	  "decimals": 6
//	}
package config
