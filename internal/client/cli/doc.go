// Package cli provides the interactive market command-line client.
//
// It wires configuration, the local cache, the API client and the market
// services into a REPL. A background watcher pings the server and the
// compute daemon and the prompt shows both states. Purchases are cached so
// "purchases" keeps working while the server is unreachable.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and (*App).commands for details.
package cli
