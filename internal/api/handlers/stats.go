package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kakwa/immowatch/internal/identity"
	"github.com/kakwa/immowatch/internal/stats"
	domain "github.com/kakwa/immowatch/pkg/types"
)

// StatsProvider defines the store methods required by the stats handler.
type StatsProvider interface {
	ListSeenListings(ctx context.Context, owner string, dealType domain.DealType, postalCode string) ([]domain.Listing, error)
}

// StatsHandler aggregates an owner's seen listings into summary buckets.
type StatsHandler struct {
	store StatsProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s StatsProvider) *StatsHandler {
	return &StatsHandler{store: s}
}

// StatsInput is the query shared by the stats endpoints.
type StatsInput struct {
	Owner      string `query:"owner" required:"true" minLength:"1" doc:"Owner of the listings"`
	DealType   string `query:"deal_type,omitempty" enum:"rent,sale" doc:"Transaction kind, defaults to rent"`
	PostalCode string `query:"postal_code,omitempty" doc:"Restrict to one postal code"`
}

// RoomStatsOutput is the response body for room-count statistics.
type RoomStatsOutput struct {
	Body []domain.RoomBucket
}

// SurfaceStatsOutput is the response body for surface-range statistics.
type SurfaceStatsOutput struct {
	Body []domain.SurfaceBucket
}

// Rooms groups the owner's seen listings by room count.
func (h *StatsHandler) Rooms(
	ctx context.Context,
	input *StatsInput,
) (*RoomStatsOutput, error) {
	listings, err := h.listings(ctx, input)
	if err != nil {
		return nil, err
	}

	buckets := stats.ByRoomCount(listings)
	if buckets == nil {
		buckets = []domain.RoomBucket{}
	}
	return &RoomStatsOutput{Body: buckets}, nil
}

// Surface groups the owner's seen listings into surface ranges.
func (h *StatsHandler) Surface(
	ctx context.Context,
	input *StatsInput,
) (*SurfaceStatsOutput, error) {
	listings, err := h.listings(ctx, input)
	if err != nil {
		return nil, err
	}

	buckets := stats.BySurfaceRange(listings)
	if buckets == nil {
		buckets = []domain.SurfaceBucket{}
	}
	return &SurfaceStatsOutput{Body: buckets}, nil
}

func (h *StatsHandler) listings(ctx context.Context, input *StatsInput) ([]domain.Listing, error) {
	listings, err := h.store.ListSeenListings(
		ctx,
		identity.NormalizeOwner(input.Owner),
		domain.ParseDealType(input.DealType),
		input.PostalCode,
	)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing seen listings failed: " + err.Error())
	}
	return listings, nil
}

// RegisterStatsRoutes registers statistics endpoints with the Huma API.
func RegisterStatsRoutes(api huma.API, h *StatsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "stats-rooms",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats/rooms",
		Summary:     "Room-count statistics",
		Description: "Groups the owner's seen listings by room count with average surface and price.",
		Tags:        []string{"stats"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Rooms)

	huma.Register(api, huma.Operation{
		OperationID: "stats-surface",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats/surface",
		Summary:     "Surface-range statistics",
		Description: "Groups the owner's seen listings into surface intervals with average price and price per area.",
		Tags:        []string{"stats"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Surface)
}
