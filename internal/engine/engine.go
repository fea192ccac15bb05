// Package engine orchestrates refresh cycles: fetching every active
// search, storing new listings, and delivering pending notifications.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/kakwa/immowatch/internal/metrics"
	"github.com/kakwa/immowatch/internal/notify"
	"github.com/kakwa/immowatch/internal/seloger"
	"github.com/kakwa/immowatch/internal/store"
	domain "github.com/kakwa/immowatch/pkg/types"
)

const (
	refreshLock     = "refresh"
	defaultCooldown = time.Minute
)

// Engine runs refresh cycles over the search registry. Cycles are
// single flight: a trigger that arrives while one is running is
// dropped, never queued.
type Engine struct {
	store     store.Store
	paginator *seloger.Paginator
	notifier  notify.Notifier
	log       *slog.Logger

	locks    *LockTable
	cooldown time.Duration
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	p *seloger.Paginator,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:     s,
		paginator: p,
		notifier:  n,
		log:       slog.Default(),
		locks:     NewLockTable(),
		cooldown:  defaultCooldown,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithCooldown sets the pause held after each cycle. The refresh lock
// stays taken for the whole pause, so back-to-back triggers cannot
// hammer the remote service.
func WithCooldown(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.cooldown = d
	}
}

// RunCycle runs one refresh cycle synchronously. It reports false
// without doing any work when another cycle holds the refresh lock.
func (eng *Engine) RunCycle(ctx context.Context) (*domain.CycleResult, bool) {
	release, ok := eng.locks.TryAcquire(refreshLock)
	if !ok {
		metrics.CyclesSkippedTotal.Inc()
		eng.log.Debug("cycle already running, trigger dropped")
		return nil, false
	}
	defer release()

	return eng.runLocked(ctx), true
}

// TriggerAsync starts a refresh cycle in the background, reporting
// whether it was accepted. A trigger arriving mid-cycle is dropped.
func (eng *Engine) TriggerAsync() bool {
	release, ok := eng.locks.TryAcquire(refreshLock)
	if !ok {
		metrics.CyclesSkippedTotal.Inc()
		eng.log.Debug("cycle already running, trigger dropped")
		return false
	}

	go func() {
		defer release()
		eng.runLocked(context.Background())
	}()
	return true
}

// runLocked does the cycle work. The caller holds the refresh lock,
// and the lock is held through the trailing cooldown.
func (eng *Engine) runLocked(ctx context.Context) *domain.CycleResult {
	start := time.Now()
	defer func() {
		metrics.CycleDuration.Observe(time.Since(start).Seconds())
	}()

	result := &domain.CycleResult{}

	searches, err := eng.store.ListActiveSearches(ctx)
	if err != nil {
		eng.log.Error("listing active searches failed", "error", err)
		return result
	}
	result.Searches = len(searches)

	for i := range searches {
		if ctx.Err() != nil {
			return result
		}

		spec := &searches[i]
		eng.log.Info("processing search",
			"search_id", spec.ID,
			"owner", spec.Owner,
			"postal_code", spec.PostalCode,
		)
		result.Stored += eng.paginator.FetchAll(ctx, spec)
	}

	result.Notified = eng.deliverPending(ctx)

	eng.log.Info("cycle complete",
		"searches", result.Searches,
		"stored", result.Stored,
		"notified", result.Notified,
		"duration", time.Since(start),
	)

	eng.sleepCooldown(ctx)
	return result
}

// deliverPending drains the un-notified visibility records and sends
// each one. Delivery is fire and forget: a failed send is logged and
// counted but never re-queued.
func (eng *Engine) deliverPending(ctx context.Context) int {
	recs, err := eng.store.DrainUnnotified(ctx)
	if err != nil {
		eng.log.Error("draining pending notifications failed", "error", err)
		return 0
	}

	var notified int
	for i := range recs {
		rec := &recs[i]

		listing, err := eng.store.GetListing(ctx, rec.ListingID)
		if err != nil {
			eng.log.Error("loading listing for notification failed",
				"listing_id", rec.ListingID,
				"owner", rec.Owner,
				"error", err,
			)
			metrics.NotificationFailuresTotal.Inc()
			continue
		}

		if err := eng.notifier.Send(ctx, rec.Owner, listing); err != nil {
			eng.log.Error("notification send failed",
				"listing_id", rec.ListingID,
				"owner", rec.Owner,
				"error", err,
			)
			metrics.NotificationFailuresTotal.Inc()
			continue
		}

		notified++
		metrics.NotificationsSentTotal.Inc()
	}

	return notified
}

func (eng *Engine) sleepCooldown(ctx context.Context) {
	if eng.cooldown <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(eng.cooldown):
	}
}
