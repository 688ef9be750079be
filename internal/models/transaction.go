package models

import (
	"github.com/shopspring/decimal"
)

// TransactionAction is the kind of event a transaction records
type TransactionAction string

const (
	ActionBuy       TransactionAction = "buy"
	ActionSell      TransactionAction = "sell"
	ActionCashIn    TransactionAction = "cash_in"
	ActionCashOut   TransactionAction = "cash_out"
	ActionTax       TransactionAction = "tax"
	ActionDividends TransactionAction = "dividends"
	ActionSplit     TransactionAction = "split"
	ActionInterest  TransactionAction = "interest"
)

// Transaction records a buy/sell/dividend/... event affecting a portfolio's holdings
type Transaction struct {
	ID          int64               `json:"id"`
	PortfolioID int64               `json:"portfolio_id"`
	TradeDate   Date                `json:"trade_date"`
	Action      TransactionAction   `json:"action"`
	AssetID     int64               `json:"asset_id"`
	Quantity    decimal.NullDecimal `json:"quantity"`
	Price       decimal.NullDecimal `json:"price"`
	Amount      decimal.Decimal     `json:"amount"`
	Fees        decimal.NullDecimal `json:"fees"`
	CurrencyID  int64               `json:"currency_id"`
	Notes       *string             `json:"notes,omitempty"`
}

// CreateTransactionRequest represents the request body for recording a transaction
type CreateTransactionRequest struct {
	PortfolioID int64               `json:"portfolio_id" binding:"required"`
	TradeDate   Date                `json:"trade_date"`
	Action      TransactionAction   `json:"action" binding:"required"`
	AssetID     int64               `json:"asset_id" binding:"required"`
	Quantity    decimal.NullDecimal `json:"quantity"`
	Price       decimal.NullDecimal `json:"price"`
	Amount      decimal.Decimal     `json:"amount"`
	Fees        decimal.NullDecimal `json:"fees"`
	CurrencyID  int64               `json:"currency_id" binding:"required"`
	Notes       *string             `json:"notes,omitempty"`
}

// ImportResult is the backend's answer to a bulk transaction import
type ImportResult struct {
	Message string `json:"message"`
}
