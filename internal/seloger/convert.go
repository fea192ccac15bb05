package seloger

import (
	domain "github.com/kakwa/immowatch/pkg/types"
)

// ToListing converts one raw ad record into a domain listing,
// normalizing every absent or empty attribute to the Unknown sentinel
// so stored listings are uniformly string-valued.
func ToListing(ad *Ad) domain.Listing {
	return domain.Listing{
		ListingID:   orUnknown(ad.ID),
		Title:       orUnknown(ad.Title),
		Description: orUnknown(ad.Description),
		Price:       orUnknown(ad.Price),
		PriceUnit:   orUnknown(ad.PriceUnit),
		Rooms:       orUnknown(ad.Rooms),
		Bedrooms:    orUnknown(ad.Bedrooms),
		Surface:     orUnknown(ad.Surface),
		SurfaceUnit: orUnknown(ad.SurfaceUnit),
		PostalCode:  orUnknown(ad.PostalCode),
		City:        orUnknown(ad.City),
		Country:     orUnknown(ad.Country),
		Latitude:    orUnknown(ad.Latitude),
		Longitude:   orUnknown(ad.Longitude),
		PhotoCount:  orUnknown(ad.PhotoCount),
		Thumbnail:   orUnknown(ad.Thumbnail),
		Permalink:   orUnknown(ad.Permalink),
		PublishedAt: orUnknown(ad.PublishedAt),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return domain.Unknown
	}
	return s
}
