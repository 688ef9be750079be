package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/epeers/portview/internal/models"
)

// Backend is the REST surface the store depends on. *api.Client implements it.
type Backend interface {
	ListPortfolios(ctx context.Context) ([]models.Portfolio, error)
	CreatePortfolio(ctx context.Context, req *models.CreatePortfolioRequest) (*models.Portfolio, error)
	GetPositions(ctx context.Context, portfolioID int64, asOf time.Time) ([]models.Position, error)
	RecalculatePositions(ctx context.Context, portfolioID int64, asOf time.Time) (*models.RecalculateResult, error)
	GetSummary(ctx context.Context, portfolioID int64, asOf time.Time) (*models.PortfolioSummary, error)
	GetStatistics(ctx context.Context, portfolioID int64, start, end time.Time) (*models.PortfolioStats, error)
	GetPerformanceMetrics(ctx context.Context, portfolioID int64) (*models.PortfolioStats, error)
	GetPerformanceHistory(ctx context.Context, portfolioID int64, start, end time.Time) (*models.PerformanceHistory, error)
	GetMonthlyReturns(ctx context.Context, portfolioID int64) ([]models.MonthlyReturn, error)
	GetAllocation(ctx context.Context, portfolioID int64, asOf time.Time) (*models.AllocationResponse, error)

	ListTransactions(ctx context.Context, portfolioID int64) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	ImportTransactions(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error)

	ListAssets(ctx context.Context) ([]models.Asset, error)
	CreateAsset(ctx context.Context, req *models.AssetRequest) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id int64, req *models.AssetRequest) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
	ListExchangeRates(ctx context.Context) ([]models.ExchangeRate, error)

	ListSettings(ctx context.Context) ([]models.Setting, error)
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	SaveSetting(ctx context.Context, req *models.SaveSettingRequest) (*models.Setting, error)
}

// ErrNoPortfolio is returned when a portfolio id is not in the loaded list
var ErrNoPortfolio = errors.New("portfolio not loaded")

// Store is the single source of truth for backend-held entities.
// It keeps the last fetched snapshot of every entity kind, mediates every
// read and write through the Backend, and is safe for concurrent use.
type Store struct {
	client Backend
	now    func() time.Time
	loc    *time.Location

	mu    sync.RWMutex
	state state

	statusMu sync.Mutex
	status   map[Op]*opState
	inflight int
	lastErr  string
}

type state struct {
	portfolios         []models.Portfolio
	currentPortfolio   *models.Portfolio
	positions          []models.Position
	portfolioSummary   *models.PortfolioSummary
	transactions       []models.Transaction
	assets             []models.Asset
	currencies         []models.Currency
	primaryCurrency    *models.Currency
	exchangeRates      []models.ExchangeRate
	portfolioStats     *models.PortfolioStats
	performanceHistory *models.PerformanceHistory
	monthlyReturns     []models.MonthlyReturn
	assetAllocation    models.AssetAllocation
	settings           map[string]models.Setting
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used to derive default date windows
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the time zone in which "today" is evaluated
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// New creates an empty store backed by client
func New(client Backend, opts ...Option) *Store {
	s := &Store{
		client: client,
		now:    time.Now,
		loc:    time.Local,
		state: state{
			assetAllocation: models.AssetAllocation{},
			settings:        make(map[string]models.Setting),
		},
		status: make(map[Op]*opState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- State setters ---

// SetPortfolios replaces the portfolio list
func (s *Store) SetPortfolios(portfolios []models.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.portfolios = slices.Clone(portfolios)
}

// SetCurrentPortfolio selects a portfolio; nil clears the selection
func (s *Store) SetCurrentPortfolio(p *models.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.currentPortfolio = clonePtr(p)
}

// SelectPortfolio makes the portfolio with the given id current. The selection
// is left unchanged when the id is not in the loaded list.
func (s *Store) SelectPortfolio(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.state.portfolios, func(p models.Portfolio) bool { return p.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrNoPortfolio, id)
	}
	p := s.state.portfolios[idx]
	s.state.currentPortfolio = &p
	return nil
}

// SetPositions replaces the positions snapshot
func (s *Store) SetPositions(positions []models.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.positions = slices.Clone(positions)
}

// SetPortfolioSummary replaces the summary snapshot
func (s *Store) SetPortfolioSummary(summary *models.PortfolioSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.portfolioSummary = clonePtr(summary)
}

// SetTransactions replaces the transaction list
func (s *Store) SetTransactions(transactions []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.transactions = slices.Clone(transactions)
}

// AddTransaction appends a transaction without deduplication
func (s *Store) AddTransaction(t models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.transactions = append(s.state.transactions, t)
}

// SetAssets replaces the asset list
func (s *Store) SetAssets(assets []models.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.assets = slices.Clone(assets)
}

// AddAsset appends an asset without deduplication
func (s *Store) AddAsset(a models.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.assets = append(s.state.assets, a)
}

// ReplaceAsset overwrites, in place, the local asset with the same id.
// It is a no-op when no local asset matches.
func (s *Store) ReplaceAsset(a models.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.assetIndex(a.ID); idx >= 0 {
		s.state.assets[idx] = a
	}
}

// RemoveAsset drops the local asset with the given id. It is a no-op when no local asset matches.
func (s *Store) RemoveAsset(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.assetIndex(id); idx >= 0 {
		s.state.assets = slices.Delete(s.state.assets, idx, idx+1)
	}
}

func (s *Store) assetIndex(id int64) int {
	return slices.IndexFunc(s.state.assets, func(a models.Asset) bool { return a.ID == id })
}

// SetCurrencies replaces the currency list and recomputes the primary currency
func (s *Store) SetCurrencies(currencies []models.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.currencies = slices.Clone(currencies)
	s.state.primaryCurrency = nil
	if idx := slices.IndexFunc(currencies, func(c models.Currency) bool { return c.IsPrimary }); idx >= 0 {
		c := currencies[idx]
		s.state.primaryCurrency = &c
	}
}

// SetExchangeRates replaces the exchange rate list
func (s *Store) SetExchangeRates(rates []models.ExchangeRate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.exchangeRates = slices.Clone(rates)
}

// SetPortfolioStats replaces the statistics snapshot
func (s *Store) SetPortfolioStats(stats *models.PortfolioStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.portfolioStats = clonePtr(stats)
}

// SetPerformanceHistory replaces the performance history snapshot
func (s *Store) SetPerformanceHistory(history *models.PerformanceHistory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.performanceHistory = clonePtr(history)
}

// SetMonthlyReturns replaces the monthly returns snapshot
func (s *Store) SetMonthlyReturns(returns []models.MonthlyReturn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.monthlyReturns = slices.Clone(returns)
}

// SetAssetAllocation replaces the allocation snapshot; nil stores an empty allocation
func (s *Store) SetAssetAllocation(allocation models.AssetAllocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if allocation == nil {
		allocation = models.AssetAllocation{}
	}
	s.state.assetAllocation = maps.Clone(allocation)
}

// SetSettings replaces the settings, indexing them by key
func (s *Store) SetSettings(settings []models.Setting) {
	byKey := make(map[string]models.Setting, len(settings))
	for _, st := range settings {
		byKey[st.Key] = st
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.settings = byKey
}

// PutSetting stores a single setting under its key
func (s *Store) PutSetting(st models.Setting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.settings[st.Key] = st
}

// --- State readers. Every reader returns a copy owned by the caller. ---

// Portfolios returns the portfolio list
func (s *Store) Portfolios() []models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.portfolios)
}

// CurrentPortfolio returns the selected portfolio, or nil
func (s *Store) CurrentPortfolio() *models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePtr(s.state.currentPortfolio)
}

// Positions returns the positions snapshot
func (s *Store) Positions() []models.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.positions)
}

// PortfolioSummary returns the summary snapshot, or nil
func (s *Store) PortfolioSummary() *models.PortfolioSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePtr(s.state.portfolioSummary)
}

// Transactions returns the transaction list in insertion order
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.transactions)
}

// Assets returns the asset list
func (s *Store) Assets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.assets)
}

// Currencies returns the currency list
func (s *Store) Currencies() []models.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.currencies)
}

// PrimaryCurrency returns the currency flagged primary when currencies were last set, or nil
func (s *Store) PrimaryCurrency() *models.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePtr(s.state.primaryCurrency)
}

// ExchangeRates returns the exchange rate list
func (s *Store) ExchangeRates() []models.ExchangeRate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.exchangeRates)
}

// PortfolioStats returns the statistics snapshot, or nil
func (s *Store) PortfolioStats() *models.PortfolioStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePtr(s.state.portfolioStats)
}

// PerformanceHistory returns the performance history snapshot, or nil
func (s *Store) PerformanceHistory() *models.PerformanceHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePtr(s.state.performanceHistory)
}

// MonthlyReturns returns the monthly returns snapshot
func (s *Store) MonthlyReturns() []models.MonthlyReturn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.monthlyReturns)
}

// AssetAllocation returns the allocation snapshot
func (s *Store) AssetAllocation() models.AssetAllocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.state.assetAllocation)
}

// Settings returns every setting, by key
func (s *Store) Settings() map[string]models.Setting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.state.settings)
}

// Setting returns the setting stored under key
func (s *Store) Setting(key string) (models.Setting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.state.settings[key]
	return st, ok
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
