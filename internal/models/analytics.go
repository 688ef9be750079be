package models

import (
	"github.com/shopspring/decimal"
)

// PortfolioSummary is the valuation of a portfolio as of a date
type PortfolioSummary struct {
	PortfolioID    int64           `json:"portfolio_id"`
	AsOfDate       Date            `json:"as_of_date"`
	TotalValue     decimal.Decimal `json:"total_value"`
	CashBalance    decimal.Decimal `json:"cash_balance"`
	InvestedAmount decimal.Decimal `json:"invested_amount"`
	UnrealizedPnL  decimal.Decimal `json:"unrealized_pnl"`
	RealizedPnL    decimal.Decimal `json:"realized_pnl"`
	Positions      []Position      `json:"positions,omitempty"`
}

// PortfolioStats holds statistics and performance metrics over a period.
// Metrics that cannot be computed for short histories are null.
type PortfolioStats struct {
	PortfolioID        int64               `json:"portfolio_id,omitempty"`
	StartDate          Date                `json:"start_date,omitzero"`
	EndDate            Date                `json:"end_date,omitzero"`
	TotalValue         decimal.Decimal     `json:"total_value"`
	CashBalance        decimal.Decimal     `json:"cash_balance"`
	InvestedAmount     decimal.Decimal     `json:"invested_amount"`
	UnrealizedPnL      decimal.Decimal     `json:"unrealized_pnl"`
	RealizedPnL        decimal.Decimal     `json:"realized_pnl"`
	TotalReturn        decimal.Decimal     `json:"total_return"`
	TimeWeightedReturn decimal.Decimal     `json:"time_weighted_return"`
	AnnualizedReturn   decimal.NullDecimal `json:"annualized_return"`
	Volatility         decimal.NullDecimal `json:"volatility"`
	MaxDrawdown        decimal.NullDecimal `json:"max_drawdown"`
	SharpeRatio        decimal.NullDecimal `json:"sharpe_ratio"`
}

// PerformancePoint is the portfolio value on one day of a performance history
type PerformancePoint struct {
	Date             Date            `json:"date"`
	TotalValue       decimal.Decimal `json:"total_value"`
	CumulativeReturn decimal.Decimal `json:"cumulative_return"`
}

// PerformanceHistory is the daily value series of a portfolio over a date range
type PerformanceHistory struct {
	PortfolioID int64              `json:"portfolio_id"`
	StartDate   Date               `json:"start_date"`
	EndDate     Date               `json:"end_date"`
	Points      []PerformancePoint `json:"points"`
}

// MonthlyReturn is the return of a portfolio over one calendar month ("YYYY-MM")
type MonthlyReturn struct {
	Month  string          `json:"month"`
	Return decimal.Decimal `json:"return"`
}

// AllocationSlice is the share of the portfolio held in one asset type
type AllocationSlice struct {
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// AssetAllocation maps an asset type to its slice of the portfolio
type AssetAllocation map[string]AllocationSlice

// AllocationResponse is the backend's answer to GET /portfolios/{id}/allocation
type AllocationResponse struct {
	PortfolioID     int64           `json:"portfolio_id"`
	AsOfDate        Date            `json:"as_of_date,omitzero"`
	TotalValue      decimal.Decimal `json:"total_value"`
	AssetAllocation AssetAllocation `json:"asset_allocation"`
}
