// Package notify defines the notification interface and implementations
// for new-listing delivery.
package notify

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/kakwa/immowatch/pkg/types"
)

// Notifier defines the interface for delivering a new listing to its
// owner.
type Notifier interface {
	Send(ctx context.Context, owner string, l *domain.Listing) error
}

// RenderListing formats a listing as the multi-line text shared by all
// delivery backends. Attributes keep their stored string form, Unknown
// sentinel included.
func RenderListing(l *domain.Listing) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - %s %s - %s room(s) - %s %s\n",
		l.Title, l.Surface, l.SurfaceUnit, l.Rooms, l.Price, l.PriceUnit)
	fmt.Fprintf(&b, "%s %s (%s)\n", l.PostalCode, l.City, l.Country)
	fmt.Fprintf(&b, "%s\n", l.Permalink)

	return b.String()
}
