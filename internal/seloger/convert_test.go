package seloger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/kakwa/immowatch/pkg/types"
)

func TestToListing(t *testing.T) {
	ad := Ad{
		ID:          "2001",
		Title:       "Loft",
		Description: "Converted workshop",
		Price:       "1500",
		PriceUnit:   "EUR",
		Rooms:       "3",
		Surface:     "82",
		SurfaceUnit: "m2",
		PostalCode:  "69001",
		City:        "Lyon",
		Permalink:   "http://example.com/2001",
	}

	l := ToListing(&ad)

	assert.Equal(t, "2001", l.ListingID)
	assert.Equal(t, "Loft", l.Title)
	assert.Equal(t, "1500", l.Price)
	assert.Equal(t, "82", l.Surface)
	assert.Equal(t, "Lyon", l.City)

	// Absent attributes normalize to the sentinel.
	assert.Equal(t, domain.Unknown, l.Bedrooms)
	assert.Equal(t, domain.Unknown, l.Country)
	assert.Equal(t, domain.Unknown, l.Latitude)
	assert.Equal(t, domain.Unknown, l.Longitude)
	assert.Equal(t, domain.Unknown, l.PhotoCount)
	assert.Equal(t, domain.Unknown, l.Thumbnail)
	assert.Equal(t, domain.Unknown, l.PublishedAt)
}

func TestToListingEmptyAd(t *testing.T) {
	l := ToListing(&Ad{})

	assert.Equal(t, domain.Unknown, l.ListingID)
	assert.Equal(t, domain.Unknown, l.Title)
	assert.Equal(t, domain.Unknown, l.Price)
}
