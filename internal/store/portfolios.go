package store

import (
	"context"
	"time"

	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/util"
)

// DefaultHistoryDays is the length of the performance window used when no range is given
const DefaultHistoryDays = 365

// HistoryOptions bounds a performance history request. Zero bounds are derived from DefaultHistoryDays.
type HistoryOptions struct {
	StartDate time.Time
	EndDate   time.Time
}

// FetchPortfolios refreshes the portfolio list. When nothing is selected yet the
// first portfolio becomes current; an existing selection is never changed.
// Failures are recorded and the previous list is kept.
func (s *Store) FetchPortfolios(ctx context.Context) {
	_ = s.fetchPortfolios(ctx)
}

func (s *Store) fetchPortfolios(ctx context.Context) error {
	run := s.begin(OpFetchPortfolios)
	defer run.end()

	portfolios, err := s.client.ListPortfolios(ctx)
	if err != nil {
		run.fail(err)
		return err
	}

	s.mu.Lock()
	s.state.portfolios = portfolios
	if len(portfolios) > 0 && s.state.currentPortfolio == nil {
		first := portfolios[0]
		s.state.currentPortfolio = &first
	}
	s.mu.Unlock()

	run.succeed()
	return nil
}

// CreatePortfolio creates a portfolio and makes it current, replacing any selection
func (s *Store) CreatePortfolio(ctx context.Context, req *models.CreatePortfolioRequest) (*models.Portfolio, error) {
	run := s.begin(OpCreatePortfolio)
	defer run.end()

	portfolio, err := s.client.CreatePortfolio(ctx, req)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.SetCurrentPortfolio(portfolio)
	run.succeed()
	return portfolio, nil
}

// FetchPositions refreshes the positions snapshot as of asOf (zero for latest).
// Failures are recorded and the previous snapshot is kept.
func (s *Store) FetchPositions(ctx context.Context, portfolioID int64, asOf time.Time) {
	run := s.begin(OpFetchPositions)
	defer run.end()

	positions, err := s.client.GetPositions(ctx, portfolioID, asOf)
	if err != nil {
		run.fail(err)
		return
	}

	s.SetPositions(positions)
	run.succeed()
}

// FetchPositionsForDate refreshes the positions snapshot as of asOf and returns it
func (s *Store) FetchPositionsForDate(ctx context.Context, portfolioID int64, asOf time.Time) ([]models.Position, error) {
	run := s.begin(OpFetchPositionsForDate)
	defer run.end()

	positions, err := s.client.GetPositions(ctx, portfolioID, asOf)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.SetPositions(positions)
	run.succeed()
	return positions, nil
}

// RecalculatePositions asks the backend to rebuild positions for asOf, then
// refetches positions for that same date. The positions snapshot comes from the
// refetch; the recalculation acknowledgment is returned to the caller.
// Another fetch of positions may interleave between the two calls.
func (s *Store) RecalculatePositions(ctx context.Context, portfolioID int64, asOf time.Time) (*models.RecalculateResult, error) {
	run := s.begin(OpRecalculatePositions)
	defer run.end()

	result, err := s.client.RecalculatePositions(ctx, portfolioID, asOf)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	positions, err := s.client.GetPositions(ctx, portfolioID, asOf)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.SetPositions(positions)
	run.succeed()
	return result, nil
}

// FetchPortfolioSummary refreshes the summary snapshot as of asOf (zero for latest)
func (s *Store) FetchPortfolioSummary(ctx context.Context, portfolioID int64, asOf time.Time) (*models.PortfolioSummary, error) {
	run := s.begin(OpFetchPortfolioSummary)
	defer run.end()

	summary, err := s.client.GetSummary(ctx, portfolioID, asOf)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.SetPortfolioSummary(summary)
	run.succeed()
	return summary, nil
}

// FetchPortfolioStats refreshes the statistics snapshot over [start, end].
// Failures are recorded and the previous snapshot is kept.
func (s *Store) FetchPortfolioStats(ctx context.Context, portfolioID int64, start, end time.Time) {
	run := s.begin(OpFetchPortfolioStats)
	defer run.end()

	stats, err := s.client.GetStatistics(ctx, portfolioID, start, end)
	if err != nil {
		run.fail(err)
		return
	}
	if stats.PortfolioID == 0 {
		stats.PortfolioID = portfolioID
	}

	s.SetPortfolioStats(stats)
	run.succeed()
}

// FetchPerformanceMetrics refreshes the statistics snapshot with since-inception metrics
func (s *Store) FetchPerformanceMetrics(ctx context.Context, portfolioID int64) (*models.PortfolioStats, error) {
	run := s.begin(OpFetchPerformanceMetrics)
	defer run.end()

	stats, err := s.client.GetPerformanceMetrics(ctx, portfolioID)
	if err != nil {
		run.fail(err)
		return nil, err
	}
	if stats.PortfolioID == 0 {
		stats.PortfolioID = portfolioID
	}

	s.SetPortfolioStats(stats)
	run.succeed()
	return stats, nil
}

// FetchPerformanceHistory refreshes the performance history snapshot.
// Without dates the window is the DefaultHistoryDays days ending today; a lone
// end date gets a start DefaultHistoryDays days earlier, and a lone start date
// runs until today.
func (s *Store) FetchPerformanceHistory(ctx context.Context, portfolioID int64, opts HistoryOptions) (*models.PerformanceHistory, error) {
	run := s.begin(OpFetchPerformanceHistory)
	defer run.end()

	start, end := s.historyWindow(opts)
	history, err := s.client.GetPerformanceHistory(ctx, portfolioID, start, end)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.SetPerformanceHistory(history)
	run.succeed()
	return history, nil
}

func (s *Store) historyWindow(opts HistoryOptions) (start, end time.Time) {
	start, end = opts.StartDate, opts.EndDate
	if end.IsZero() {
		if start.IsZero() {
			return util.TrailingWindow(s.now(), s.loc, DefaultHistoryDays)
		}
		end = util.Today(s.now(), s.loc)
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -DefaultHistoryDays)
	}
	return start, end
}

// FetchMonthlyReturns refreshes the monthly returns snapshot
func (s *Store) FetchMonthlyReturns(ctx context.Context, portfolioID int64) ([]models.MonthlyReturn, error) {
	run := s.begin(OpFetchMonthlyReturns)
	defer run.end()

	returns, err := s.client.GetMonthlyReturns(ctx, portfolioID)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.SetMonthlyReturns(returns)
	run.succeed()
	return returns, nil
}

// FetchAssetAllocation refreshes the allocation-by-type snapshot as of asOf (zero for latest).
// Only the asset_allocation member is kept; the full response is returned.
func (s *Store) FetchAssetAllocation(ctx context.Context, portfolioID int64, asOf time.Time) (*models.AllocationResponse, error) {
	run := s.begin(OpFetchAssetAllocation)
	defer run.end()

	allocation, err := s.client.GetAllocation(ctx, portfolioID, asOf)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.SetAssetAllocation(allocation.AssetAllocation)
	run.succeed()
	return allocation, nil
}
