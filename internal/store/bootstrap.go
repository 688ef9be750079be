package store

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Bootstrap loads the reference data a dashboard needs on mount: portfolios,
// assets, currencies, exchange rates and settings, concurrently. Each leg keeps
// its best-effort policy (failures are recorded, previous data kept); the first
// failure is also returned.
func (s *Store) Bootstrap(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.fetchPortfolios(ctx) })
	g.Go(func() error { return s.fetchAssets(ctx) })
	g.Go(func() error { return s.fetchCurrencies(ctx) })
	g.Go(func() error { return s.fetchExchangeRates(ctx) })
	g.Go(func() error { return s.fetchSettings(ctx) })
	return g.Wait()
}
