package models

import (
	"github.com/shopspring/decimal"
)

// AssetType classifies an asset
type AssetType string

const (
	AssetTypeStock AssetType = "stock"
	AssetTypeBond  AssetType = "bond"
	AssetTypeFund  AssetType = "fund"
	AssetTypeETF   AssetType = "etf"
	AssetTypeCash  AssetType = "cash"
)

// Asset represents a tradeable instrument
type Asset struct {
	ID         int64     `json:"id"`
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name"`
	ISIN       *string   `json:"isin,omitempty"`
	Type       AssetType `json:"type"`
	CurrencyID int64     `json:"currency_id"`
}

// AssetRequest represents the request body for creating or updating an asset
type AssetRequest struct {
	Symbol     string    `json:"symbol" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	ISIN       *string   `json:"isin,omitempty"`
	Type       AssetType `json:"type" binding:"required"`
	CurrencyID int64     `json:"currency_id" binding:"required"`
}

// Currency is a currency known to the backend. Exactly one is expected to be primary.
type Currency struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	IsPrimary bool   `json:"is_primary"`
}

// ExchangeRate converts one unit of a currency into the primary currency on a date
type ExchangeRate struct {
	ID            int64           `json:"id"`
	CurrencyID    int64           `json:"currency_id"`
	RateDate      Date            `json:"rate_date"`
	RateToPrimary decimal.Decimal `json:"rate_to_primary"`
}
