// Package common defines shared constants and sentinel errors used across
// client and server layers of stakemarket. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Ledger errors.
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrGenesisDone           = errors.New("genesis already applied")

	// Marketplace errors.
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInsufficientStake = errors.New("insufficient stake")
	ErrListingNotActive  = errors.New("listing not active")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrNoAccess          = errors.New("no access to content")
	ErrInvalidContentRef = errors.New("invalid content reference")
	ErrInvalidContentKey = errors.New("invalid content key")
)
