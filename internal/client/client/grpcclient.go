package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/stakemarket/internal/client/models"
	"github.com/dmitrijs2005/stakemarket/internal/common"
	pb "github.com/dmitrijs2005/stakemarket/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.MarketClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if t := s.token(); t != "" {
		ctx = withAccessToken(ctx, t)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewMarketClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewMarketClient(conn)
	return nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Publish(ctx context.Context, contentRef string, price int64) (int64, error) {
	resp, err := s.client.Publish(ctx, &pb.PublishRequest{ContentRef: contentRef, Price: price})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.ListingId, nil
}

func (s *GRPCClient) BuyAccess(ctx context.Context, listingID int64) (*models.Purchase, error) {
	resp, err := s.client.BuyAccess(ctx, &pb.ListingRequest{ListingId: listingID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPurchase(resp.Purchase), nil
}

func (s *GRPCClient) ToggleStatus(ctx context.Context, listingID int64) (bool, error) {
	resp, err := s.client.ToggleStatus(ctx, &pb.ListingRequest{ListingId: listingID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.IsActive, nil
}

func (s *GRPCClient) Transfer(ctx context.Context, to string, amount int64) error {
	_, err := s.client.Transfer(ctx, &pb.TransferRequest{To: to, Amount: amount})
	return s.mapError(err)
}

func (s *GRPCClient) Approve(ctx context.Context, spender string, amount int64) error {
	_, err := s.client.Approve(ctx, &pb.ApproveRequest{Spender: spender, Amount: amount})
	return s.mapError(err)
}

func (s *GRPCClient) TransferFrom(ctx context.Context, owner, to string, amount int64) error {
	_, err := s.client.TransferFrom(ctx, &pb.TransferFromRequest{Owner: owner, To: to, Amount: amount})
	return s.mapError(err)
}

func (s *GRPCClient) GetListing(ctx context.Context, listingID int64) (*models.Listing, error) {
	resp, err := s.client.GetListing(ctx, &pb.ListingRequest{ListingId: listingID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromListing(resp.Listing), nil
}

func (s *GRPCClient) ListListings(ctx context.Context) ([]*models.Listing, error) {
	resp, err := s.client.ListListings(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromListings(resp.Listings), nil
}

func (s *GRPCClient) ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error) {
	resp, err := s.client.ListByPublisher(ctx, &pb.ListByPublisherRequest{Publisher: publisher})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromListings(resp.Listings), nil
}

func (s *GRPCClient) StakeAmount(ctx context.Context) (*models.Stake, error) {
	resp, err := s.client.StakeAmount(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Stake{Amount: resp.Amount, EngineAccount: resp.EngineAccount}, nil
}

func (s *GRPCClient) BalanceOf(ctx context.Context, account string) (int64, error) {
	resp, err := s.client.BalanceOf(ctx, &pb.BalanceOfRequest{Account: account})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Amount, nil
}

func (s *GRPCClient) Allowance(ctx context.Context, owner, spender string) (int64, error) {
	resp, err := s.client.Allowance(ctx, &pb.AllowanceRequest{Owner: owner, Spender: spender})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Amount, nil
}

func (s *GRPCClient) PurchasesOf(ctx context.Context, buyer string) ([]*models.Purchase, error) {
	resp, err := s.client.PurchasesOf(ctx, &pb.PurchasesOfRequest{Buyer: buyer})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]*models.Purchase, 0, len(resp.Purchases))
	for _, p := range resp.Purchases {
		out = append(out, fromPurchase(p))
	}
	return out, nil
}

func (s *GRPCClient) PresignUpload(ctx context.Context, pointer string, contentKey []byte) (*models.Presigned, error) {
	resp, err := s.client.PresignUpload(ctx, &pb.PresignUploadRequest{Key: pointer, ContentKey: contentKey})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPresigned(resp), nil
}

func (s *GRPCClient) PresignDownload(ctx context.Context, listingID int64) (*models.Presigned, error) {
	resp, err := s.client.PresignDownload(ctx, &pb.ListingRequest{ListingId: listingID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPresigned(resp), nil
}

// WatchEvents calls handle for every committed event until ctx is done,
// the stream ends, or handle returns an error.
func (s *GRPCClient) WatchEvents(ctx context.Context, handle func(*models.Event) error) error {
	stream, err := s.client.WatchEvents(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return s.mapError(err)
		}
		if err := handle(fromEvent(ev)); err != nil {
			return err
		}
	}
}

// domainErrors are recognised by exact status message and returned as-is
// so callers can match them with errors.Is.
var domainErrors = []error{
	common.ErrInvalidPrice,
	common.ErrInvalidAmount,
	common.ErrInvalidContentRef,
	common.ErrInvalidContentKey,
	common.ErrInsufficientStake,
	common.ErrInsufficientAllowance,
	common.ErrInsufficientBalance,
	common.ErrListingNotActive,
	common.ErrNotAuthorized,
	common.ErrNoAccess,
	common.ErrorNotFound,
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Internal:
		if st.Message() == common.ErrorInternal.Error() {
			return fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
	case codes.InvalidArgument, codes.NotFound, codes.PermissionDenied, codes.FailedPrecondition:
		for _, target := range domainErrors {
			if st.Message() == target.Error() {
				return target
			}
		}
	}
	return fmt.Errorf("rpc error: %w", err)
}
