// Package refresh pulls fresh snapshots of the three backend collections and
// publishes them into the application state. Each refresh is the programmatic
// analogue of a screen coming into focus.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"moneta/internal/api"
	"moneta/internal/core"
	applog "moneta/internal/log"
	"moneta/internal/state"
)

var ErrNoUser = errors.New("no signed-in user")

type Refresher struct {
	backend api.Backend
	store   *state.Store
	now     func() time.Time
}

func New(backend api.Backend, store *state.Store) *Refresher {
	return &Refresher{
		backend: backend,
		store:   store,
		now:     time.Now,
	}
}

// Refresh fetches transactions, accounts and categories concurrently and
// writes each through its single state writer, then recomputes the headline
// totals for the currently selected view window. The first fetch error
// cancels the remaining fetches and nothing is written.
func (r *Refresher) Refresh(ctx context.Context) error {
	userID := r.store.UserID()
	if userID == "" {
		return ErrNoUser
	}

	var (
		txns     []core.Transaction
		accounts []core.Account
		cats     []core.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = r.backend.ListTransactions(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = r.backend.ListAccounts(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = r.backend.ListCategories(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}

	r.store.SetTransactions(txns)
	r.store.SetAccounts(accounts)
	r.store.SetCategories(cats)

	windowed := core.FilterByViewMode(txns, r.store.ViewMode(), r.now())
	r.store.SetTotals(core.CalculateTotals(windowed))

	slog.InfoContext(ctx, "Snapshot refreshed",
		applog.FieldComponent, applog.ComponentRefresh,
		applog.FieldOperation, applog.OpRefresh,
		applog.FieldUserID, userID,
		"transactions", len(txns),
		"accounts", len(accounts),
		"categories", len(cats))
	return nil
}

// Run refreshes on every tick until the context is cancelled, calling onCycle
// after each successful refresh. A failed refresh is logged and the loop keeps
// going; the stale snapshot stays in place until the next attempt succeeds.
func (r *Refresher) Run(ctx context.Context, interval time.Duration, onCycle func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				slog.ErrorContext(ctx, "Refresh failed", applog.NewFields().
					WithComponent(applog.ComponentRefresh).
					WithOperation(applog.OpRefresh).
					WithError(err).
					ToSlice()...)
				continue
			}
			if onCycle != nil {
				onCycle()
			}
		}
	}
}
