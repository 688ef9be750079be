package store

import (
	"slices"

	"github.com/epeers/portview/internal/models"
	"github.com/shopspring/decimal"
)

// RecentTransactionsLimit is the number of entries RecentTransactions returns at most
const RecentTransactionsLimit = 10

// CurrentPortfolioID returns the id of the selected portfolio; ok is false when nothing is selected
func (s *Store) CurrentPortfolioID() (id int64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.currentPortfolio == nil {
		return 0, false
	}
	return s.state.currentPortfolio.ID, true
}

// TotalPortfolioValue sums the market value of the current positions; unpriced positions count as 0
func (s *Store) TotalPortfolioValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sumNullable(s.state.positions, func(p models.Position) decimal.NullDecimal { return p.MarketValue })
}

// TotalPnL sums the total P&L of the current positions; missing values count as 0
func (s *Store) TotalPnL() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sumNullable(s.state.positions, func(p models.Position) decimal.NullDecimal { return p.TotalPnL })
}

// AssetsByType groups assets by type, keeping the first-seen order of types and list order within each
func (s *Store) AssetsByType() []models.Group[models.Asset] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return groupBy(s.state.assets, func(a models.Asset) string { return string(a.Type) })
}

// TransactionsByType groups transactions by action, keeping the first-seen order of actions and list order within each
func (s *Store) TransactionsByType() []models.Group[models.Transaction] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return groupBy(s.state.transactions, func(t models.Transaction) string { return string(t.Action) })
}

// RecentTransactions returns the most recent transactions by trade date, newest first.
// The order of transactions sharing a trade date is unspecified.
func (s *Store) RecentTransactions() []models.Transaction {
	s.mu.RLock()
	sorted := slices.Clone(s.state.transactions)
	s.mu.RUnlock()

	slices.SortFunc(sorted, func(a, b models.Transaction) int {
		return b.TradeDate.Compare(a.TradeDate.Time)
	})
	if len(sorted) > RecentTransactionsLimit {
		sorted = sorted[:RecentTransactionsLimit]
	}
	return sorted
}

func sumNullable[T any](items []T, value func(T) decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if v := value(item); v.Valid {
			total = total.Add(v.Decimal)
		}
	}
	return total
}

func groupBy[T any](items []T, key func(T) string) []models.Group[T] {
	groups := []models.Group[T]{}
	index := make(map[string]int)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, models.Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
