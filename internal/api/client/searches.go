package client

import (
	"context"
	"net/url"

	domain "github.com/kakwa/immowatch/pkg/types"
)

// searchRequest contains only the fields the API accepts when
// registering a search.
type searchRequest struct {
	Owner      string `json:"owner"`
	PostalCode string `json:"postal_code"`
	MinSurface string `json:"min_surface"`
	MaxPrice   string `json:"max_price"`
	DealType   string `json:"deal_type,omitempty"`
	MinRooms   int    `json:"min_rooms,omitempty"`
}

// CreateSearchResult is the server's response to registering a search.
type CreateSearchResult struct {
	Created bool              `json:"created"`
	Search  domain.SearchSpec `json:"search"`
}

// CreateSearch registers a recurring search.
func (c *Client) CreateSearch(ctx context.Context, spec *domain.SearchSpec) (*CreateSearchResult, error) {
	req := searchRequest{
		Owner:      spec.Owner,
		PostalCode: spec.PostalCode,
		MinSurface: spec.MinSurface,
		MaxPrice:   spec.MaxPrice,
		DealType:   string(spec.DealType),
		MinRooms:   spec.MinRooms,
	}

	var result CreateSearchResult
	if err := c.post(ctx, "/api/v1/searches", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSearches returns all of an owner's searches.
func (c *Client) ListSearches(ctx context.Context, owner string) ([]domain.SearchSpec, error) {
	var specs []domain.SearchSpec
	if err := c.get(ctx, "/api/v1/searches?owner="+url.QueryEscape(owner), &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// DeleteSearch disables a search.
func (c *Client) DeleteSearch(ctx context.Context, id, owner string) error {
	return c.del(ctx, "/api/v1/searches/"+url.PathEscape(id)+"?owner="+url.QueryEscape(owner), nil)
}
