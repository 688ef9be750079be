package models

import (
	"github.com/shopspring/decimal"
)

// Portfolio represents a named collection of holdings tracked over time
type Portfolio struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	BaseCurrencyID int64   `json:"base_currency_id"`
	CreatedAt      Date    `json:"created_at,omitzero"`
}

// CreatePortfolioRequest represents the request body for creating a portfolio
type CreatePortfolioRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description,omitempty"`
	BaseCurrencyID int64   `json:"base_currency_id" binding:"required"`
}

// Position is the quantity and value of one asset within a portfolio as of a given date.
// MarketValue and TotalPnL are null when the backend had no price for the date.
type Position struct {
	ID           int64               `json:"id"`
	PortfolioID  int64               `json:"portfolio_id"`
	AssetID      int64               `json:"asset_id"`
	PositionDate Date                `json:"position_date"`
	Quantity     decimal.Decimal     `json:"quantity"`
	AverageCost  decimal.Decimal     `json:"average_cost"`
	CurrentPrice decimal.NullDecimal `json:"current_price"`
	MarketValue  decimal.NullDecimal `json:"market_value"`
	TotalPnL     decimal.NullDecimal `json:"total_pnl"`
}

// RecalculateResult is the backend's acknowledgment of a position recalculation
type RecalculateResult struct {
	Message          string `json:"message"`
	PositionsUpdated int    `json:"positions_updated,omitempty"`
	AsOfDate         Date   `json:"as_of_date,omitzero"`
}
