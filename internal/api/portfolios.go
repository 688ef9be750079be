package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/epeers/portview/internal/models"
)

// ListPortfolios fetches every portfolio
func (c *Client) ListPortfolios(ctx context.Context) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	if err := c.getJSON(ctx, "/portfolios/", nil, &portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}

// CreatePortfolio creates a portfolio and returns it as stored by the backend
func (c *Client) CreatePortfolio(ctx context.Context, req *models.CreatePortfolioRequest) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := c.sendJSON(ctx, http.MethodPost, "/portfolios/", nil, req, &portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// GetPositions fetches the positions of a portfolio as of a date.
// A zero asOf asks for the latest positions.
func (c *Client) GetPositions(ctx context.Context, portfolioID int64, asOf time.Time) ([]models.Position, error) {
	var positions []models.Position
	path := fmt.Sprintf("/portfolios/%d/positions", portfolioID)
	if err := c.getJSON(ctx, path, dateQuery("as_of_date", asOf), &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// RecalculatePositions asks the backend to rebuild the positions of a portfolio for a date.
// The answer is only an acknowledgment; positions must be fetched again afterwards.
func (c *Client) RecalculatePositions(ctx context.Context, portfolioID int64, asOf time.Time) (*models.RecalculateResult, error) {
	var result models.RecalculateResult
	path := fmt.Sprintf("/portfolios/%d/recalculate-positions", portfolioID)
	if err := c.sendJSON(ctx, http.MethodPost, path, dateQuery("as_of_date", asOf), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSummary fetches the valuation summary of a portfolio as of a date
func (c *Client) GetSummary(ctx context.Context, portfolioID int64, asOf time.Time) (*models.PortfolioSummary, error) {
	var summary models.PortfolioSummary
	path := fmt.Sprintf("/portfolios/%d/summary", portfolioID)
	if err := c.getJSON(ctx, path, dateQuery("as_of_date", asOf), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetStatistics fetches portfolio statistics over [start, end]
func (c *Client) GetStatistics(ctx context.Context, portfolioID int64, start, end time.Time) (*models.PortfolioStats, error) {
	var stats models.PortfolioStats
	path := fmt.Sprintf("/portfolios/%d/statistics", portfolioID)
	if err := c.getJSON(ctx, path, rangeQuery(start, end), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetPerformanceMetrics fetches the since-inception performance metrics of a portfolio
func (c *Client) GetPerformanceMetrics(ctx context.Context, portfolioID int64) (*models.PortfolioStats, error) {
	var stats models.PortfolioStats
	path := fmt.Sprintf("/portfolios/%d/performance-metrics", portfolioID)
	if err := c.getJSON(ctx, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetPerformanceHistory fetches the daily value series of a portfolio over [start, end]
func (c *Client) GetPerformanceHistory(ctx context.Context, portfolioID int64, start, end time.Time) (*models.PerformanceHistory, error) {
	var history models.PerformanceHistory
	path := fmt.Sprintf("/portfolios/%d/performance-history", portfolioID)
	if err := c.getJSON(ctx, path, rangeQuery(start, end), &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// GetMonthlyReturns fetches the month-by-month returns of a portfolio
func (c *Client) GetMonthlyReturns(ctx context.Context, portfolioID int64) ([]models.MonthlyReturn, error) {
	var returns []models.MonthlyReturn
	path := fmt.Sprintf("/portfolios/%d/monthly-returns", portfolioID)
	if err := c.getJSON(ctx, path, nil, &returns); err != nil {
		return nil, err
	}
	return returns, nil
}

// GetAllocation fetches the allocation of a portfolio by asset type as of a date
func (c *Client) GetAllocation(ctx context.Context, portfolioID int64, asOf time.Time) (*models.AllocationResponse, error) {
	var allocation models.AllocationResponse
	path := fmt.Sprintf("/portfolios/%d/allocation", portfolioID)
	params := dateQuery("as_of_date", asOf)
	params.Set("by", "type")
	if err := c.getJSON(ctx, path, params, &allocation); err != nil {
		return nil, err
	}
	return &allocation, nil
}

// rangeQuery carries start_date and end_date; a zero bound is left out
func rangeQuery(start, end time.Time) url.Values {
	params := dateQuery("start_date", start)
	if !end.IsZero() {
		params.Set("end_date", end.Format(models.DateLayout))
	}
	return params
}
