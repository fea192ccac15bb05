// Package store defines the datastore abstraction for immowatch.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/kakwa/immowatch/pkg/types"
)

// Store defines all data access operations for immowatch.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) (inserted bool, err error)
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	ListSeenListings(ctx context.Context, owner string, dealType domain.DealType, postalCode string) ([]domain.Listing, error)

	// Visibility
	RecordSeen(ctx context.Context, rec *domain.VisibilityRecord) error
	DrainUnnotified(ctx context.Context) ([]domain.VisibilityRecord, error)

	// Searches
	CreateSearch(ctx context.Context, s *domain.SearchSpec) (created bool, err error)
	DisableSearch(ctx context.Context, id, owner string) (disabled bool, err error)
	ListSearches(ctx context.Context, owner string) ([]domain.SearchSpec, error)
	ListActiveSearches(ctx context.Context) ([]domain.SearchSpec, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
