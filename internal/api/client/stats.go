package client

import (
	"context"
	"net/url"

	domain "github.com/kakwa/immowatch/pkg/types"
)

// StatsQuery selects the listings a statistics request covers.
type StatsQuery struct {
	Owner      string
	DealType   string
	PostalCode string
}

func (q StatsQuery) encode() string {
	params := url.Values{}
	params.Set("owner", q.Owner)
	if q.DealType != "" {
		params.Set("deal_type", q.DealType)
	}
	if q.PostalCode != "" {
		params.Set("postal_code", q.PostalCode)
	}
	return params.Encode()
}

// RoomStats returns room-count statistics for an owner's seen listings.
func (c *Client) RoomStats(ctx context.Context, q StatsQuery) ([]domain.RoomBucket, error) {
	var buckets []domain.RoomBucket
	if err := c.get(ctx, "/api/v1/stats/rooms?"+q.encode(), &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// SurfaceStats returns surface-range statistics for an owner's seen listings.
func (c *Client) SurfaceStats(ctx context.Context, q StatsQuery) ([]domain.SurfaceBucket, error) {
	var buckets []domain.SurfaceBucket
	if err := c.get(ctx, "/api/v1/stats/surface?"+q.encode(), &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
