package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusCodes maps domain sentinels onto gRPC codes.
var statusCodes = []struct {
	target error
	code   codes.Code
}{
	{common.ErrInvalidPrice, codes.InvalidArgument},
	{common.ErrInvalidAmount, codes.InvalidArgument},
	{common.ErrInvalidContentRef, codes.InvalidArgument},
	{common.ErrInvalidContentKey, codes.InvalidArgument},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrNotAuthorized, codes.PermissionDenied},
	{common.ErrNoAccess, codes.PermissionDenied},
	{common.ErrInsufficientStake, codes.FailedPrecondition},
	{common.ErrInsufficientAllowance, codes.FailedPrecondition},
	{common.ErrInsufficientBalance, codes.FailedPrecondition},
	{common.ErrListingNotActive, codes.FailedPrecondition},
	{common.ErrGenesisDone, codes.FailedPrecondition},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// toStatus maps domain errors onto gRPC codes. The status message is the
// sentinel's own text, without wrapping context, so clients can match it
// exactly. Anything unrecognised is logged and reported as
// common.ErrorInternal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, m := range statusCodes {
		if errors.Is(err, m.target) {
			return status.Error(m.code, m.target.Error())
		}
	}

	s.logger.Error(ctx, "internal error", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
