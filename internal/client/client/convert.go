package client

import (
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/client/models"
	pb "github.com/dmitrijs2005/stakemarket/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// asTime keeps an unset timestamp as the zero time rather than the epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fromListing(l *pb.Listing) *models.Listing {
	if l == nil {
		return nil
	}
	return &models.Listing{
		ID:           l.Id,
		Publisher:    l.Publisher,
		Price:        l.Price,
		IsActive:     l.IsActive,
		StakedAmount: l.StakedAmount,
		ContentRef:   l.ContentRef,
		CreatedAt:    asTime(l.CreatedAt),
		UpdatedAt:    asTime(l.UpdatedAt),
	}
}

func fromListings(ls []*pb.Listing) []*models.Listing {
	out := make([]*models.Listing, 0, len(ls))
	for _, l := range ls {
		out = append(out, fromListing(l))
	}
	return out
}

func fromPurchase(p *pb.Purchase) *models.Purchase {
	if p == nil {
		return nil
	}
	return &models.Purchase{
		ID:         p.Id,
		Seq:        p.Seq,
		Buyer:      p.Buyer,
		ListingID:  p.ListingId,
		ContentRef: p.ContentRef,
		Price:      p.Price,
		CreatedAt:  asTime(p.CreatedAt),
	}
}

func fromEvent(ev *pb.Event) *models.Event {
	return &models.Event{
		Kind:       ev.Kind,
		ListingID:  ev.ListingId,
		Actor:      ev.Actor,
		ContentRef: ev.ContentRef,
		IsActive:   ev.IsActive,
		Purchase:   fromPurchase(ev.Purchase),
		At:         asTime(ev.At),
	}
}

func fromPresigned(p *pb.PresignResponse) *models.Presigned {
	headers := make(map[string]string, len(p.Headers))
	for _, h := range p.Headers {
		headers[h.Name] = h.Value
	}
	return &models.Presigned{
		URL:        p.Url,
		Key:        p.Key,
		ExpiresAt:  asTime(p.ExpiresAt),
		Headers:    headers,
		ContentKey: p.ContentKey,
	}
}
