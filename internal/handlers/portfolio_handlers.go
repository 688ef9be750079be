package handlers

import (
	"net/http"
	"time"

	"github.com/epeers/portview/internal/format"
	"github.com/epeers/portview/internal/middleware"
	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PortfolioHandler handles portfolio, position and analytics endpoints
type PortfolioHandler struct {
	store *store.Store
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(s *store.Store) *PortfolioHandler {
	return &PortfolioHandler{
		store: s,
	}
}

// List handles GET /api/portfolios
// @Summary List portfolios
// @Description Refresh the portfolio list from the backend and return it with the current selection
// @Tags portfolios
// @Produce json
// @Success 200 {object} models.PortfolioListResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios [get]
func (h *PortfolioHandler) List(c *gin.Context) {
	h.store.FetchPortfolios(c.Request.Context())

	portfolios := h.store.Portfolios()
	if portfolios == nil {
		if h.store.Status(store.OpFetchPortfolios).Err != "" {
			writeStaleError(c, h.store, store.OpFetchPortfolios)
			return
		}
		portfolios = []models.Portfolio{}
	}

	c.JSON(http.StatusOK, models.PortfolioListResponse{
		Portfolios: portfolios,
		Current:    h.store.CurrentPortfolio(),
	})
}

// Create handles POST /api/portfolios
// @Summary Create a portfolio
// @Description Create a portfolio on the backend and make it the current one
// @Tags portfolios
// @Accept json
// @Produce json
// @Param portfolio body models.CreatePortfolioRequest true "Portfolio to create"
// @Success 201 {object} models.Portfolio
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios [post]
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req models.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	portfolio, err := h.store.CreatePortfolio(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetCurrentPortfolioHeader(c, portfolio.ID)
	c.JSON(http.StatusCreated, portfolio)
}

// Select handles PUT /api/portfolios/current/:id
// @Summary Select the current portfolio
// @Tags portfolios
// @Produce json
// @Param id path int true "Portfolio ID"
// @Success 200 {object} models.Portfolio
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/portfolios/current/{id} [put]
func (h *PortfolioHandler) Select(c *gin.Context) {
	id, ok := parseID(c, "id", "portfolio")
	if !ok {
		return
	}

	if err := h.store.SelectPortfolio(id); err != nil {
		writeError(c, err)
		return
	}

	middleware.SetCurrentPortfolioHeader(c, id)
	c.JSON(http.StatusOK, h.store.CurrentPortfolio())
}

// Positions handles GET /api/portfolios/:id/positions
// @Summary Get positions
// @Description Refresh the positions of a portfolio, optionally as of a date, with totals
// @Tags portfolios
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Param as_of_date query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} models.PositionsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/positions [get]
func (h *PortfolioHandler) Positions(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}
	asOf, ok := parseDate(c, "as_of_date")
	if !ok {
		return
	}

	if asOf.IsZero() {
		h.store.FetchPositions(c.Request.Context(), id, asOf)
		if h.store.Status(store.OpFetchPositions).Err != "" && !positionsOf(h.store.Positions(), id) {
			writeStaleError(c, h.store, store.OpFetchPositions)
			return
		}
	} else if _, err := h.store.FetchPositionsForDate(c.Request.Context(), id, asOf); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.positionsView(id, asOf))
}

// Recalculate handles POST /api/portfolios/:id/recalculate
// @Summary Recalculate positions
// @Description Ask the backend to rebuild positions from transactions, then refetch them
// @Tags portfolios
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Param as_of_date query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} models.RecalculateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/recalculate [post]
func (h *PortfolioHandler) Recalculate(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}
	asOf, ok := parseDate(c, "as_of_date")
	if !ok {
		return
	}

	result, err := h.store.RecalculatePositions(c.Request.Context(), id, asOf)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RecalculateResponse{
		Result:    result,
		Positions: h.positionsView(id, asOf),
	})
}

// positionsOf reports whether a non-empty snapshot belongs entirely to portfolio id
func positionsOf(positions []models.Position, id int64) bool {
	if len(positions) == 0 {
		return false
	}
	for _, p := range positions {
		if p.PortfolioID != id {
			return false
		}
	}
	return true
}

func (h *PortfolioHandler) positionsView(id int64, asOf time.Time) models.PositionsResponse {
	positions := h.store.Positions()
	if positions == nil {
		positions = []models.Position{}
	}
	total := h.store.TotalPortfolioValue()
	pnl := h.store.TotalPnL()
	primary := h.store.PrimaryCurrency()

	return models.PositionsResponse{
		PortfolioID:       id,
		AsOfDate:          format.Date(asOf),
		Positions:         positions,
		TotalValue:        total,
		TotalPnL:          pnl,
		TotalValueDisplay: format.Currency(decimal.NewNullDecimal(total), primary, 2),
		TotalPnLDisplay:   format.Currency(decimal.NewNullDecimal(pnl), primary, 2),
	}
}

// Summary handles GET /api/portfolios/:id/summary
// @Summary Get portfolio summary
// @Tags analytics
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Param as_of_date query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} models.SummaryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/summary [get]
func (h *PortfolioHandler) Summary(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}
	asOf, ok := parseDate(c, "as_of_date")
	if !ok {
		return
	}

	summary, err := h.store.FetchPortfolioSummary(c.Request.Context(), id, asOf)
	if err != nil {
		writeError(c, err)
		return
	}

	primary := h.store.PrimaryCurrency()
	money := func(v decimal.Decimal) string { return format.Currency(decimal.NewNullDecimal(v), primary, 2) }
	c.JSON(http.StatusOK, models.SummaryResponse{
		Summary: summary,
		Display: map[string]string{
			"as_of_date":      summary.AsOfDate.String(),
			"total_value":     money(summary.TotalValue),
			"cash_balance":    money(summary.CashBalance),
			"invested_amount": money(summary.InvestedAmount),
			"unrealized_pnl":  money(summary.UnrealizedPnL),
			"realized_pnl":    money(summary.RealizedPnL),
		},
	})
}

// Statistics handles GET /api/portfolios/:id/statistics
// @Summary Get portfolio statistics
// @Description Refresh statistics over a period; the previous snapshot of the same portfolio is served when the refresh fails
// @Tags analytics
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Param start_date query string false "Period start (YYYY-MM-DD)"
// @Param end_date query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} models.StatisticsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/statistics [get]
func (h *PortfolioHandler) Statistics(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}
	start, ok := parseDate(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDate(c, "end_date")
	if !ok {
		return
	}

	h.store.FetchPortfolioStats(c.Request.Context(), id, start, end)
	stats := h.store.PortfolioStats()
	if stats == nil || stats.PortfolioID != id {
		writeStaleError(c, h.store, store.OpFetchPortfolioStats)
		return
	}

	c.JSON(http.StatusOK, h.statisticsView(stats))
}

// PerformanceMetrics handles GET /api/portfolios/:id/performance-metrics
// @Summary Get since-inception performance metrics
// @Tags analytics
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Success 200 {object} models.StatisticsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/performance-metrics [get]
func (h *PortfolioHandler) PerformanceMetrics(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}

	stats, err := h.store.FetchPerformanceMetrics(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.statisticsView(stats))
}

func (h *PortfolioHandler) statisticsView(stats *models.PortfolioStats) models.StatisticsResponse {
	primary := h.store.PrimaryCurrency()
	return models.StatisticsResponse{
		Stats: stats,
		Display: map[string]string{
			"total_value":          format.Currency(decimal.NewNullDecimal(stats.TotalValue), primary, 2),
			"total_return":         format.Percentage(decimal.NewNullDecimal(stats.TotalReturn), 2),
			"time_weighted_return": format.Percentage(decimal.NewNullDecimal(stats.TimeWeightedReturn), 2),
			"annualized_return":    format.Percentage(stats.AnnualizedReturn, 2),
			"volatility":           format.Percentage(stats.Volatility, 2),
			"max_drawdown":         format.Percentage(stats.MaxDrawdown, 2),
			"sharpe_ratio":         format.Number(stats.SharpeRatio, 2),
		},
	}
}

// PerformanceHistory handles GET /api/portfolios/:id/performance-history
// @Summary Get performance history
// @Description Daily values over a window; without dates the window is the last 365 days
// @Tags analytics
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} models.PerformanceHistory
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/performance-history [get]
func (h *PortfolioHandler) PerformanceHistory(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}
	start, ok := parseDate(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDate(c, "end_date")
	if !ok {
		return
	}

	history, err := h.store.FetchPerformanceHistory(c.Request.Context(), id, store.HistoryOptions{StartDate: start, EndDate: end})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// MonthlyReturns handles GET /api/portfolios/:id/monthly-returns
// @Summary Get monthly returns
// @Tags analytics
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Success 200 {array} models.MonthlyReturn
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/monthly-returns [get]
func (h *PortfolioHandler) MonthlyReturns(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}

	returns, err := h.store.FetchMonthlyReturns(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if returns == nil {
		returns = []models.MonthlyReturn{}
	}
	c.JSON(http.StatusOK, returns)
}

// Allocation handles GET /api/portfolios/:id/allocation
// @Summary Get allocation by asset type
// @Tags analytics
// @Produce json
// @Param id path string true "Portfolio ID, or current for the selected portfolio"
// @Param as_of_date query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} models.AllocationViewResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/portfolios/{id}/allocation [get]
func (h *PortfolioHandler) Allocation(c *gin.Context) {
	id, ok := portfolioParam(c)
	if !ok {
		return
	}
	asOf, ok := parseDate(c, "as_of_date")
	if !ok {
		return
	}

	resp, err := h.store.FetchAssetAllocation(c.Request.Context(), id, asOf)
	if err != nil {
		writeError(c, err)
		return
	}

	allocation := h.store.AssetAllocation()
	percentages := make(map[string]string, len(allocation))
	for assetType, slice := range allocation {
		percentages[assetType] = format.Percentage(decimal.NewNullDecimal(slice.Percentage), 2)
	}

	c.JSON(http.StatusOK, models.AllocationViewResponse{
		PortfolioID: id,
		TotalValue:  resp.TotalValue,
		Allocation:  allocation,
		Percentages: percentages,
	})
}
