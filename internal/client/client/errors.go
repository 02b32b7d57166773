package client

import (
	"errors"

	"github.com/dmitrijs2005/stakemarket/internal/common"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized is the shared sentinel so callers can match either.
	ErrUnauthorized          = common.ErrorUnauthorized
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
