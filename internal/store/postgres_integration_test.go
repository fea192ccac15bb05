//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kakwa/immowatch/internal/identity"
	"github.com/kakwa/immowatch/internal/store"
	domain "github.com/kakwa/immowatch/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("immowatch_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testListing(id string) *domain.Listing {
	return &domain.Listing{
		ListingID:   id,
		Title:       "Bright two rooms",
		Description: "Near the station",
		Price:       "850",
		PriceUnit:   "EUR",
		Rooms:       "2",
		Bedrooms:    "1",
		Surface:     "45",
		SurfaceUnit: "m2",
		PostalCode:  "75011",
		City:        "Paris",
		Country:     domain.Unknown,
		Latitude:    domain.Unknown,
		Longitude:   domain.Unknown,
		PhotoCount:  "4",
		Thumbnail:   domain.Unknown,
		Permalink:   "http://example.com/" + id,
		PublishedAt: domain.Unknown,
	}
}

func seenRecord(owner, listingID string) *domain.VisibilityRecord {
	return &domain.VisibilityRecord{
		Key:       identity.VisibilityKey(owner, listingID),
		ListingID: listingID,
		Owner:     owner,
		DealType:  domain.DealRent,
	}
}

func testSearch(owner string) *domain.SearchSpec {
	spec := &domain.SearchSpec{
		Owner:      owner,
		PostalCode: "75011",
		MinSurface: "30",
		MaxPrice:   "1200",
		DealType:   domain.DealRent,
		MinRooms:   2,
	}
	spec.ID = identity.SearchID(spec.Owner, spec.PostalCode, spec.MinSurface, spec.MaxPrice, spec.DealType, spec.MinRooms)
	return spec
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_UpsertListing(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new listing", func(t *testing.T) {
		l := testListing("101")
		inserted, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.False(t, l.FirstSeenAt.IsZero())
	})

	t.Run("first write wins", func(t *testing.T) {
		l := testListing("first-write-1")
		inserted, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
		require.True(t, inserted)

		l2 := testListing("first-write-1")
		l2.Price = "999"
		inserted, err = s.UpsertListing(ctx, l2)
		require.NoError(t, err)
		assert.False(t, inserted)

		got, err := s.GetListing(ctx, "first-write-1")
		require.NoError(t, err)
		assert.Equal(t, "850", got.Price)
	})
}

func TestPostgresStore_GetListing(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		l := testListing("get-1")
		_, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)

		got, err := s.GetListing(ctx, "get-1")
		require.NoError(t, err)
		assert.Equal(t, "Bright two rooms", got.Title)
		assert.Equal(t, domain.Unknown, got.Latitude)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetListing(ctx, "nonexistent")
		assert.Error(t, err)
	})
}

func TestPostgresStore_Visibility(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, id := range []string{"v1", "v2", "v3"} {
		_, err := s.UpsertListing(ctx, testListing(id))
		require.NoError(t, err)
	}

	t.Run("drain returns each record once in order", func(t *testing.T) {
		require.NoError(t, s.RecordSeen(ctx, seenRecord("alice", "v1")))
		require.NoError(t, s.RecordSeen(ctx, seenRecord("alice", "v2")))
		require.NoError(t, s.RecordSeen(ctx, seenRecord("bob", "v1")))

		recs, err := s.DrainUnnotified(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "v1", recs[0].ListingID)
		assert.Equal(t, "alice", recs[0].Owner)
		assert.True(t, recs[0].Notified)

		// Second drain is empty.
		recs, err = s.DrainUnnotified(ctx)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("duplicate seen record keeps notified flag", func(t *testing.T) {
		require.NoError(t, s.RecordSeen(ctx, seenRecord("alice", "v3")))

		_, err := s.DrainUnnotified(ctx)
		require.NoError(t, err)

		// Re-recording after notification must not re-queue.
		require.NoError(t, s.RecordSeen(ctx, seenRecord("alice", "v3")))
		recs, err := s.DrainUnnotified(ctx)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestPostgresStore_Searches(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("create is idempotent", func(t *testing.T) {
		spec := testSearch("alice")
		created, err := s.CreateSearch(ctx, spec)
		require.NoError(t, err)
		assert.True(t, created)
		assert.False(t, spec.CreatedAt.IsZero())

		created, err = s.CreateSearch(ctx, testSearch("alice"))
		require.NoError(t, err)
		assert.False(t, created)

		specs, err := s.ListSearches(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, specs, 1)
	})

	t.Run("disable is owner scoped", func(t *testing.T) {
		spec := testSearch("bob")
		_, err := s.CreateSearch(ctx, spec)
		require.NoError(t, err)

		disabled, err := s.DisableSearch(ctx, spec.ID, "mallory")
		require.NoError(t, err)
		assert.False(t, disabled)

		disabled, err = s.DisableSearch(ctx, spec.ID, "bob")
		require.NoError(t, err)
		assert.True(t, disabled)

		active, err := s.ListActiveSearches(ctx)
		require.NoError(t, err)
		for _, a := range active {
			assert.NotEqual(t, spec.ID, a.ID)
		}
	})

	t.Run("re-adding a disabled search reactivates it", func(t *testing.T) {
		spec := testSearch("carol")
		_, err := s.CreateSearch(ctx, spec)
		require.NoError(t, err)

		_, err = s.DisableSearch(ctx, spec.ID, "carol")
		require.NoError(t, err)

		created, err := s.CreateSearch(ctx, testSearch("carol"))
		require.NoError(t, err)
		assert.False(t, created)

		specs, err := s.ListSearches(ctx, "carol")
		require.NoError(t, err)
		require.Len(t, specs, 1)
		assert.True(t, specs[0].Active)
	})
}

func TestPostgresStore_ListSeenListings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	paris := testListing("seen-paris")
	lyon := testListing("seen-lyon")
	lyon.PostalCode = "69001"

	for _, l := range []*domain.Listing{paris, lyon} {
		_, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
	}
	require.NoError(t, s.RecordSeen(ctx, seenRecord("alice", "seen-paris")))
	require.NoError(t, s.RecordSeen(ctx, seenRecord("alice", "seen-lyon")))

	all, err := s.ListSeenListings(ctx, "alice", domain.DealRent, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := s.ListSeenListings(ctx, "alice", domain.DealRent, "75011")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "seen-paris", filtered[0].ListingID)

	sales, err := s.ListSeenListings(ctx, "alice", domain.DealSale, "")
	require.NoError(t, err)
	assert.Empty(t, sales)
}
