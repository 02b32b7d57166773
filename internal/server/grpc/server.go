// Package grpc serves the market engine over gRPC as stakemarket.v1.Market,
// alongside the standard health service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/stakemarket/internal/logging"
	pb "github.com/dmitrijs2005/stakemarket/internal/proto"
	"github.com/dmitrijs2005/stakemarket/internal/server/content"
	"github.com/dmitrijs2005/stakemarket/internal/server/engine"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Market is the engine surface served over the wire.
type Market interface {
	Publish(ctx context.Context, publisher, contentRef string, price models.Amount) (models.ListingID, error)
	BuyAccess(ctx context.Context, buyer string, id models.ListingID) (*models.Purchase, error)
	ToggleStatus(ctx context.Context, caller string, id models.ListingID) (bool, error)
	Transfer(ctx context.Context, caller, to string, amount models.Amount) error
	Approve(ctx context.Context, caller, spender string, amount models.Amount) error
	TransferFrom(ctx context.Context, caller, owner, to string, amount models.Amount) error
	GetListing(ctx context.Context, id models.ListingID) (*models.Listing, error)
	ListAll(ctx context.Context) ([]models.ListingID, error)
	Listings(ctx context.Context) ([]*models.Listing, error)
	ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error)
	StakeAmount() models.Amount
	EngineAccount() string
	BalanceOf(ctx context.Context, account string) (models.Amount, error)
	Allowance(ctx context.Context, owner, spender string) (models.Amount, error)
	PurchasesOf(ctx context.Context, buyer string) ([]*models.Purchase, error)
	Subscribe(ctx context.Context) <-chan models.Event
}

// ContentService presigns content URLs.
type ContentService interface {
	PresignUpload(ctx context.Context, identity, pointer string, contentKey []byte) (*content.Presigned, error)
	PresignDownload(ctx context.Context, identity string, id models.ListingID) (*content.Presigned, error)
}

var _ Market = (*engine.Engine)(nil)

type GRPCServer struct {
	address   string
	market    Market
	content   ContentService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, market Market, cs ContentService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		market:    market,
		content:   cs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
	)

	pb.RegisterMarketServer(srv, &marketHandler{server: s})

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(pb.Market_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
