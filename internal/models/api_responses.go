package models

import (
	"github.com/shopspring/decimal"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// Group is one bucket of a group-by view, in first-seen key order
type Group[T any] struct {
	Key   string `json:"key"`
	Items []T    `json:"items"`
}

// PortfolioListResponse is the portfolio list together with the current selection
type PortfolioListResponse struct {
	Portfolios []Portfolio `json:"portfolios"`
	Current    *Portfolio  `json:"current"`
}

// PositionsResponse is a positions snapshot with its aggregates
type PositionsResponse struct {
	PortfolioID       int64           `json:"portfolio_id"`
	AsOfDate          string          `json:"as_of_date,omitempty"`
	Positions         []Position      `json:"positions"`
	TotalValue        decimal.Decimal `json:"total_value"`
	TotalPnL          decimal.Decimal `json:"total_pnl"`
	TotalValueDisplay string          `json:"total_value_display"`
	TotalPnLDisplay   string          `json:"total_pnl_display"`
}

// RecalculateResponse pairs the backend acknowledgment with the refetched positions
type RecalculateResponse struct {
	Result    *RecalculateResult `json:"result"`
	Positions PositionsResponse  `json:"positions"`
}

// SummaryResponse is a portfolio summary with display strings
type SummaryResponse struct {
	Summary *PortfolioSummary `json:"summary"`
	Display map[string]string `json:"display"`
}

// StatisticsResponse is a statistics snapshot with display strings
type StatisticsResponse struct {
	Stats   *PortfolioStats   `json:"stats"`
	Display map[string]string `json:"display"`
}

// AllocationViewResponse is the allocation by asset type with formatted percentages
type AllocationViewResponse struct {
	PortfolioID int64             `json:"portfolio_id"`
	TotalValue  decimal.Decimal   `json:"total_value"`
	Allocation  AssetAllocation   `json:"asset_allocation"`
	Percentages map[string]string `json:"percentages"`
}

// TransactionsResponse is the transaction list with its grouped and recent views
type TransactionsResponse struct {
	Transactions []Transaction        `json:"transactions"`
	ByType       []Group[Transaction] `json:"by_type"`
	Recent       []Transaction        `json:"recent"`
}

// ImportResponse reports a transactions import
type ImportResponse struct {
	Rows    int    `json:"rows"`
	Message string `json:"message"`
}

// AssetsResponse is the asset list with its by-type view
type AssetsResponse struct {
	Assets []Asset        `json:"assets"`
	ByType []Group[Asset] `json:"by_type"`
}

// CurrenciesResponse is the currency list with the primary currency
type CurrenciesResponse struct {
	Currencies []Currency `json:"currencies"`
	Primary    *Currency  `json:"primary"`
}

// SaveSettingInput is the view server's request body for saving a setting.
// Value may be any JSON value; it is stored as its JavaScript String() form.
type SaveSettingInput struct {
	Key         string  `json:"key" binding:"required"`
	Value       any     `json:"value"`
	Description *string `json:"description"`
}
