package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	pb "github.com/dmitrijs2005/stakemarket/internal/proto"
	"github.com/dmitrijs2005/stakemarket/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authenticated lists the methods that act on behalf of a caller.
var authenticated = map[string]struct{}{
	pb.Market_Publish_FullMethodName:         {},
	pb.Market_BuyAccess_FullMethodName:       {},
	pb.Market_ToggleStatus_FullMethodName:    {},
	pb.Market_Transfer_FullMethodName:        {},
	pb.Market_Approve_FullMethodName:         {},
	pb.Market_TransferFrom_FullMethodName:    {},
	pb.Market_PresignUpload_FullMethodName:   {},
	pb.Market_PresignDownload_FullMethodName: {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, ok := authenticated[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "method", info.FullMethod, "error", err)
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(context.WithValue(ctx, userIDKey, userID), req)
}

// identityFromContext returns the caller placed by accessTokenInterceptor.
func identityFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}
	return id, nil
}
