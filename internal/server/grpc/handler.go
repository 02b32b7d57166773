package grpc

import (
	"context"
	"sort"

	pb "github.com/dmitrijs2005/stakemarket/internal/proto"
	"github.com/dmitrijs2005/stakemarket/internal/server/content"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// marketHandler implements pb.MarketServer.
type marketHandler struct {
	pb.UnimplementedMarketServer
	server *GRPCServer
}

var _ pb.MarketServer = (*marketHandler)(nil)

func toListing(l *models.Listing) *pb.Listing {
	return &pb.Listing{
		Id:           l.ID,
		Publisher:    l.Publisher,
		Price:        l.Price,
		IsActive:     l.IsActive,
		StakedAmount: l.StakedAmount,
		ContentRef:   l.ContentRef,
		CreatedAt:    timestamppb.New(l.CreatedAt),
		UpdatedAt:    timestamppb.New(l.UpdatedAt),
	}
}

func toListings(ls []*models.Listing) []*pb.Listing {
	out := make([]*pb.Listing, 0, len(ls))
	for _, l := range ls {
		out = append(out, toListing(l))
	}
	return out
}

func toPurchase(p *models.Purchase) *pb.Purchase {
	if p == nil {
		return nil
	}
	return &pb.Purchase{
		Id:         p.ID,
		Seq:        p.Seq,
		Buyer:      p.Buyer,
		ListingId:  p.ListingID,
		ContentRef: p.ContentRef,
		Price:      p.Price,
		CreatedAt:  timestamppb.New(p.CreatedAt),
	}
}

func toEvent(ev models.Event) *pb.Event {
	return &pb.Event{
		Kind:       string(ev.Kind),
		ListingId:  ev.ListingID,
		Actor:      ev.Actor,
		ContentRef: ev.ContentRef,
		IsActive:   ev.IsActive,
		Purchase:   toPurchase(ev.Purchase),
		At:         timestamppb.New(ev.At),
	}
}

func toPresigned(p *content.Presigned) *pb.PresignResponse {
	names := make([]string, 0, len(p.Headers))
	for name := range p.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]*pb.Header, 0, len(names))
	for _, name := range names {
		headers = append(headers, &pb.Header{Name: name, Value: p.Headers[name]})
	}

	return &pb.PresignResponse{
		Url:        p.URL,
		Key:        p.Key,
		ExpiresAt:  timestamppb.New(p.ExpiresAt),
		Headers:    headers,
		ContentKey: p.ContentKey,
	}
}

func (h *marketHandler) Publish(ctx context.Context, req *pb.PublishRequest) (*pb.PublishResponse, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := h.server.market.Publish(ctx, caller, req.ContentRef, req.Price)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.PublishResponse{ListingId: id}, nil
}

func (h *marketHandler) BuyAccess(ctx context.Context, req *pb.ListingRequest) (*pb.BuyAccessResponse, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := h.server.market.BuyAccess(ctx, caller, req.ListingId)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.BuyAccessResponse{Purchase: toPurchase(p)}, nil
}

func (h *marketHandler) ToggleStatus(ctx context.Context, req *pb.ListingRequest) (*pb.ToggleStatusResponse, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	active, err := h.server.market.ToggleStatus(ctx, caller, req.ListingId)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.ToggleStatusResponse{IsActive: active}, nil
}

func (h *marketHandler) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.Empty, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.server.market.Transfer(ctx, caller, req.To, req.Amount); err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (h *marketHandler) Approve(ctx context.Context, req *pb.ApproveRequest) (*pb.Empty, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.server.market.Approve(ctx, caller, req.Spender, req.Amount); err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (h *marketHandler) TransferFrom(ctx context.Context, req *pb.TransferFromRequest) (*pb.Empty, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.server.market.TransferFrom(ctx, caller, req.Owner, req.To, req.Amount); err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (h *marketHandler) GetListing(ctx context.Context, req *pb.ListingRequest) (*pb.GetListingResponse, error) {
	l, err := h.server.market.GetListing(ctx, req.ListingId)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.GetListingResponse{Listing: toListing(l)}, nil
}

// ListListings returns ids and details; the id sequence is authoritative
// for publish order.
func (h *marketHandler) ListListings(ctx context.Context, _ *pb.Empty) (*pb.ListListingsResponse, error) {
	ls, err := h.server.market.Listings(ctx)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}

	ids := make([]int64, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, l.ID)
	}
	return &pb.ListListingsResponse{Ids: ids, Listings: toListings(ls)}, nil
}

func (h *marketHandler) ListByPublisher(ctx context.Context, req *pb.ListByPublisherRequest) (*pb.ListListingsResponse, error) {
	if req.Publisher == "" {
		return nil, status.Error(codes.InvalidArgument, "publisher is required")
	}

	ls, err := h.server.market.ListByPublisher(ctx, req.Publisher)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}

	ids := make([]int64, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, l.ID)
	}
	return &pb.ListListingsResponse{Ids: ids, Listings: toListings(ls)}, nil
}

func (h *marketHandler) StakeAmount(ctx context.Context, _ *pb.Empty) (*pb.StakeAmountResponse, error) {
	return &pb.StakeAmountResponse{
		Amount:        h.server.market.StakeAmount(),
		EngineAccount: h.server.market.EngineAccount(),
	}, nil
}

func (h *marketHandler) BalanceOf(ctx context.Context, req *pb.BalanceOfRequest) (*pb.AmountResponse, error) {
	b, err := h.server.market.BalanceOf(ctx, req.Account)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.AmountResponse{Amount: b}, nil
}

func (h *marketHandler) Allowance(ctx context.Context, req *pb.AllowanceRequest) (*pb.AmountResponse, error) {
	a, err := h.server.market.Allowance(ctx, req.Owner, req.Spender)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return &pb.AmountResponse{Amount: a}, nil
}

func (h *marketHandler) PurchasesOf(ctx context.Context, req *pb.PurchasesOfRequest) (*pb.PurchasesOfResponse, error) {
	ps, err := h.server.market.PurchasesOf(ctx, req.Buyer)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}

	out := make([]*pb.Purchase, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPurchase(p))
	}
	return &pb.PurchasesOfResponse{Purchases: out}, nil
}

func (h *marketHandler) PresignUpload(ctx context.Context, req *pb.PresignUploadRequest) (*pb.PresignResponse, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := h.server.content.PresignUpload(ctx, caller, req.Key, req.ContentKey)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return toPresigned(p), nil
}

func (h *marketHandler) PresignDownload(ctx context.Context, req *pb.ListingRequest) (*pb.PresignResponse, error) {
	caller, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := h.server.content.PresignDownload(ctx, caller, req.ListingId)
	if err != nil {
		return nil, h.server.toStatus(ctx, err)
	}
	return toPresigned(p), nil
}

func (h *marketHandler) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// WatchEvents streams committed events until the client goes away. A
// subscriber dropped for falling behind gets ResourceExhausted and should
// resubscribe.
func (h *marketHandler) WatchEvents(_ *pb.Empty, stream grpc.ServerStreamingServer[pb.Event]) error {
	ctx := stream.Context()
	events := h.server.market.Subscribe(ctx)

	for ev := range events {
		if err := stream.Send(toEvent(ev)); err != nil {
			return err
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	return status.Error(codes.ResourceExhausted, "event subscriber fell behind")
}
