package notify

import (
	"context"
	"log/slog"

	domain "github.com/kakwa/immowatch/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded deliveries. It
// is used when no notification backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards deliveries with a
// log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Send logs and discards a delivery.
func (n *NoOpNotifier) Send(_ context.Context, owner string, l *domain.Listing) error {
	n.log.Debug("notification discarded (no backend configured)",
		"owner", owner,
		"listing_id", l.ListingID,
	)
	return nil
}
