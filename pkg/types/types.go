// Package domain defines the core business types for immowatch.
package domain

import "time"

// Unknown is the sentinel stored for any listing attribute the remote
// service omitted or left empty. Listing attributes are uniformly
// string-typed so display and storage never have to branch on nulls.
const Unknown = "Unknown"

// DealType represents the transaction kind of a search or listing.
type DealType string

// Deal type constants.
const (
	DealRent DealType = "rent"
	DealSale DealType = "sale"
)

// ParseDealType normalizes a user-supplied deal type string.
// Anything other than "sale" falls back to rent, the historical default.
func ParseDealType(s string) DealType {
	if s == string(DealSale) {
		return DealSale
	}
	return DealRent
}

// Listing is one remote real-estate ad. It is immutable once stored:
// the first write wins and later fetches of the same ListingID are
// ignored. Every attribute is a string; absent values hold Unknown.
type Listing struct {
	ListingID   string `json:"listing_id"   db:"listing_id"`
	Title       string `json:"title"        db:"title"`
	Description string `json:"description"  db:"description"`
	Price       string `json:"price"        db:"price"`
	PriceUnit   string `json:"price_unit"   db:"price_unit"`
	Rooms       string `json:"rooms"        db:"rooms"`
	Bedrooms    string `json:"bedrooms"     db:"bedrooms"`
	Surface     string `json:"surface"      db:"surface"`
	SurfaceUnit string `json:"surface_unit" db:"surface_unit"`
	PostalCode  string `json:"postal_code"  db:"postal_code"`
	City        string `json:"city"         db:"city"`
	Country     string `json:"country"      db:"country"`
	Latitude    string `json:"latitude"     db:"latitude"`
	Longitude   string `json:"longitude"    db:"longitude"`
	PhotoCount  string `json:"photo_count"  db:"photo_count"`
	Thumbnail   string `json:"thumbnail"    db:"thumbnail"`
	Permalink   string `json:"permalink"    db:"permalink"`
	PublishedAt string `json:"published_at" db:"published_at"`

	FirstSeenAt time.Time `json:"first_seen_at" db:"first_seen_at"`
}

// SearchSpec is a stored recurring search. Its ID is a deterministic
// hash of the owner plus the full criteria tuple, so re-adding
// identical criteria is an insert-if-absent no-op.
type SearchSpec struct {
	ID         string    `json:"id"          db:"id"`
	Owner      string    `json:"owner"       db:"owner"`
	Active     bool      `json:"active"      db:"active"`
	PostalCode string    `json:"postal_code" db:"postal_code"`
	MinSurface string    `json:"min_surface" db:"min_surface"`
	MaxPrice   string    `json:"max_price"   db:"max_price"`
	DealType   DealType  `json:"deal_type"   db:"deal_type"`
	MinRooms   int       `json:"min_rooms"   db:"min_rooms"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// VisibilityRecord tracks whether an owner has been notified of a
// listing. There is exactly one record per (owner, listing) pair no
// matter how many of the owner's searches matched it; Key is the hash
// of the pair and enforces that at the storage layer.
type VisibilityRecord struct {
	Key       string    `json:"key"        db:"key"`
	ListingID string    `json:"listing_id" db:"listing_id"`
	Owner     string    `json:"owner"      db:"owner"`
	DealType  DealType  `json:"deal_type"  db:"deal_type"`
	Notified  bool      `json:"notified"   db:"notified"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RoomBucket is one row of the rooms statistic: all of an owner's seen
// listings with the same room count.
type RoomBucket struct {
	Rooms      int     `json:"rooms"`
	Count      int     `json:"count"`
	AvgSurface float64 `json:"avg_surface"`
	AvgPrice   float64 `json:"avg_price"`
}

// SurfaceBucket is one row of the surface statistic: listings whose
// surface falls in [Low, High).
type SurfaceBucket struct {
	Label           string  `json:"label"`
	Low             int     `json:"low"`
	High            int     `json:"high"`
	Count           int     `json:"count"`
	AvgPrice        float64 `json:"avg_price"`
	AvgPricePerArea float64 `json:"avg_price_per_area"`
}

// CycleResult summarizes one refresh cycle for logging and the trigger
// endpoint.
type CycleResult struct {
	Searches int `json:"searches"`
	Stored   int `json:"stored"`
	Notified int `json:"notified"`
}
