package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/kakwa/immowatch/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing stores a listing if its listing_id is new, reporting
// whether a row was inserted. An existing row is left untouched: the
// first stored version of a listing wins.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) (bool, error) {
	args := pgx.NamedArgs{
		"listing_id":   l.ListingID,
		"title":        l.Title,
		"description":  l.Description,
		"price":        l.Price,
		"price_unit":   l.PriceUnit,
		"rooms":        l.Rooms,
		"bedrooms":     l.Bedrooms,
		"surface":      l.Surface,
		"surface_unit": l.SurfaceUnit,
		"postal_code":  l.PostalCode,
		"city":         l.City,
		"country":      l.Country,
		"latitude":     l.Latitude,
		"longitude":    l.Longitude,
		"photo_count":  l.PhotoCount,
		"thumbnail":    l.Thumbnail,
		"permalink":    l.Permalink,
		"published_at": l.PublishedAt,
	}

	err := s.pool.QueryRow(ctx, queryInsertListing, args).Scan(&l.FirstSeenAt)

	// ON CONFLICT DO NOTHING returns no rows — the listing was
	// already stored.
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("inserting listing: %w", err)
	}
	return true, nil
}

// GetListing retrieves a listing by its remote listing ID.
func (s *PostgresStore) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListing, listingID), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListSeenListings returns every listing an owner has a visibility
// record for, filtered by deal type and optionally by postal code
// (empty matches all), ordered by first-seen time.
func (s *PostgresStore) ListSeenListings(
	ctx context.Context,
	owner string,
	dealType domain.DealType,
	postalCode string,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, queryListSeenListings, owner, string(dealType), postalCode)
	if err != nil {
		return nil, fmt.Errorf("querying seen listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// RecordSeen inserts a visibility record if its key is absent. A
// duplicate key means the owner already saw (or will be notified of)
// this listing; the existing record's notified flag is preserved.
func (s *PostgresStore) RecordSeen(ctx context.Context, rec *domain.VisibilityRecord) error {
	args := pgx.NamedArgs{
		"key":        rec.Key,
		"listing_id": rec.ListingID,
		"owner":      rec.Owner,
		"deal_type":  string(rec.DealType),
	}

	if _, err := s.pool.Exec(ctx, queryRecordSeen, args); err != nil {
		return fmt.Errorf("recording visibility: %w", err)
	}
	return nil
}

// DrainUnnotified atomically selects every un-notified visibility
// record, flips it to notified, and returns the drained set in
// first-seen order. Each record is returned exactly once across all
// callers.
func (s *PostgresStore) DrainUnnotified(ctx context.Context) ([]domain.VisibilityRecord, error) {
	rows, err := s.pool.Query(ctx, queryDrainUnnotified)
	if err != nil {
		return nil, fmt.Errorf("draining visibility: %w", err)
	}
	defer rows.Close()

	var recs []domain.VisibilityRecord
	for rows.Next() {
		var r domain.VisibilityRecord
		var dealType string
		if err := rows.Scan(&r.Key, &r.ListingID, &r.Owner, &dealType, &r.Notified, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning visibility record: %w", err)
		}
		r.DealType = domain.DealType(dealType)
		recs = append(recs, r)
	}

	return recs, rows.Err()
}

// CreateSearch stores a search if its ID is new, reporting whether a
// row was created. Re-adding existing criteria reactivates the search
// without touching its stored fields.
func (s *PostgresStore) CreateSearch(ctx context.Context, spec *domain.SearchSpec) (bool, error) {
	args := pgx.NamedArgs{
		"id":          spec.ID,
		"owner":       spec.Owner,
		"postal_code": spec.PostalCode,
		"min_surface": spec.MinSurface,
		"max_price":   spec.MaxPrice,
		"deal_type":   string(spec.DealType),
		"min_rooms":   spec.MinRooms,
	}

	var created bool
	if err := s.pool.QueryRow(ctx, queryCreateSearch, args).Scan(&created, &spec.CreatedAt); err != nil {
		return false, fmt.Errorf("creating search: %w", err)
	}
	spec.Active = true
	return created, nil
}

// DisableSearch deactivates a search, reporting whether a row changed.
// The owner must match: one owner cannot disable another's search.
func (s *PostgresStore) DisableSearch(ctx context.Context, id, owner string) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryDisableSearch, id, owner)
	if err != nil {
		return false, fmt.Errorf("disabling search: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListSearches returns all of an owner's searches, active or not.
func (s *PostgresStore) ListSearches(ctx context.Context, owner string) ([]domain.SearchSpec, error) {
	return s.querySearches(ctx, queryListSearches, owner)
}

// ListActiveSearches returns every active search across all owners,
// oldest first. This is the refresh cycle's work list.
func (s *PostgresStore) ListActiveSearches(ctx context.Context) ([]domain.SearchSpec, error) {
	return s.querySearches(ctx, queryListActiveSearches)
}

// querySearches is a helper for search queries.
func (s *PostgresStore) querySearches(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.SearchSpec, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying searches: %w", err)
	}
	defer rows.Close()

	var specs []domain.SearchSpec
	for rows.Next() {
		var spec domain.SearchSpec
		var dealType string
		if err := rows.Scan(
			&spec.ID, &spec.Owner, &spec.Active, &spec.PostalCode,
			&spec.MinSurface, &spec.MaxPrice, &dealType, &spec.MinRooms,
			&spec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning search: %w", err)
		}
		spec.DealType = domain.DealType(dealType)
		specs = append(specs, spec)
	}

	return specs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ListingID, &l.Title, &l.Description,
		&l.Price, &l.PriceUnit, &l.Rooms, &l.Bedrooms, &l.Surface, &l.SurfaceUnit,
		&l.PostalCode, &l.City, &l.Country, &l.Latitude, &l.Longitude,
		&l.PhotoCount, &l.Thumbnail, &l.Permalink, &l.PublishedAt, &l.FirstSeenAt,
	)
}
