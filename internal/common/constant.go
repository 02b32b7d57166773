// Package common contains shared constants and sentinel errors used across
// stakemarket components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// caller's access token on outbound requests.
const AccessTokenHeaderName = "access_token"
