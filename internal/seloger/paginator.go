package seloger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kakwa/immowatch/internal/identity"
	"github.com/kakwa/immowatch/internal/metrics"
	domain "github.com/kakwa/immowatch/pkg/types"
)

const defaultMaxPages = 50

// ListingSink receives the records produced by a page drain. It is the
// narrow slice of the store the paginator needs.
type ListingSink interface {
	UpsertListing(ctx context.Context, l *domain.Listing) (bool, error)
	RecordSeen(ctx context.Context, rec *domain.VisibilityRecord) error
}

// Paginator drains the full page chain of one search into the sink.
//
// Failure policy is best effort by design: a page that cannot be
// fetched or parsed stops pagination for that search only. Pages
// already drained stay stored, the error is logged and counted, and
// the caller never sees it — one broken search must not block the
// others in the same cycle.
type Paginator struct {
	client   SearchClient
	sink     ListingSink
	log      *slog.Logger
	maxPages int
	denylist []string
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithMaxPages overrides the page-chain safety cap.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithDenylist sets substrings that disqualify a record. A listing
// whose description or permalink contains any of them is dropped
// before storage.
func WithDenylist(terms []string) PaginatorOption {
	return func(p *Paginator) {
		p.denylist = terms
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.log = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client SearchClient, sink ListingSink, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		sink:     sink,
		log:      slog.Default(),
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchAll runs one search through the remote service, following the
// next-page chain until it ends or the page cap is reached, and returns
// the number of listings newly stored.
func (p *Paginator) FetchAll(ctx context.Context, spec *domain.SearchSpec) int {
	pageURL := p.client.SearchURL(spec)
	owner := identity.NormalizeOwner(spec.Owner)

	var stored int

	for page := 0; page < p.maxPages; page++ {
		if ctx.Err() != nil {
			return stored
		}

		result, err := p.client.FetchPage(ctx, pageURL)
		if err != nil {
			metrics.FetchFailuresTotal.Inc()
			p.log.Warn("page fetch failed, stopping this search",
				"search_id", spec.ID,
				"owner", owner,
				"page", page+1,
				"error", err,
			)
			return stored
		}

		metrics.FetchPagesTotal.Inc()

		for i := range result.Ads {
			listing := ToListing(&result.Ads[i])

			if p.isDenied(&listing) {
				continue
			}

			inserted, err := p.sink.UpsertListing(ctx, &listing)
			if err != nil {
				p.log.Error("listing upsert failed",
					"listing_id", listing.ListingID,
					"error", err,
				)
				continue
			}
			if inserted {
				stored++
				metrics.ListingsStoredTotal.Inc()
			}

			rec := &domain.VisibilityRecord{
				Key:       identity.VisibilityKey(owner, listing.ListingID),
				ListingID: listing.ListingID,
				Owner:     owner,
				DealType:  spec.DealType,
			}
			if err := p.sink.RecordSeen(ctx, rec); err != nil {
				p.log.Error("visibility record failed",
					"listing_id", listing.ListingID,
					"owner", owner,
					"error", err,
				)
			}
		}

		if result.NextPage == "" {
			return stored
		}
		pageURL = result.NextPage
	}

	p.log.Warn("page cap reached, result set truncated",
		"search_id", spec.ID,
		"owner", owner,
		"max_pages", p.maxPages,
	)
	return stored
}

// isDenied reports whether a listing matches the exclusion denylist.
func (p *Paginator) isDenied(l *domain.Listing) bool {
	if len(p.denylist) == 0 {
		return false
	}

	haystack := strings.ToLower(l.Description + " " + l.Permalink)
	for _, term := range p.denylist {
		if term == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
