// Package client contains client-side building blocks for the market CLI.
//
// It provides the Client contract, a gRPC implementation (GRPCClient) that
// injects the caller's access token and maps status codes to sentinel
// errors, and bootstrap helpers for the local sqlite cache (InitDatabase,
// RunMigrations, NewRepositories).
//
// Transport conditions surface as ErrUnavailable and ErrUnauthorized. Domain
// rejections (inactive listing, missing allowance) come back as the shared
// sentinels from package common when the status message matches one exactly;
// anything else keeps its gRPC status.
package client
