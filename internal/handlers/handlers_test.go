package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/epeers/portview/internal/api"
	"github.com/epeers/portview/internal/middleware"
	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup returns a view router wired to a store whose backend is the given gin engine
func setup(t *testing.T, backend *gin.Engine) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	s := store.New(api.NewClientWithHTTPClient(server.URL, server.Client()))
	router := gin.New()
	RegisterRoutes(router, s, server.URL)
	return router, s
}

func newBackend() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doRequest(router *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	return doRequest(router, method, path, bytes.NewReader(b), "application/json")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	router, _ := setup(t, newBackend())

	w := doRequest(router, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Backend)
}

func TestListPortfolios_SelectsFirstAndSetsHeader(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Portfolio{{ID: 3, Name: "Core"}, {ID: 4, Name: "Bonds"}})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.PortfolioListResponse](t, w)
	assert.Len(t, resp.Portfolios, 2)
	require.NotNil(t, resp.Current)
	assert.Equal(t, int64(3), resp.Current.ID)

	// the header reflects the selection at the start of the request
	w = doRequest(router, http.MethodGet, "/api/status", nil, "")
	assert.Equal(t, "3", w.Header().Get(middleware.CurrentPortfolioHeader))
}

func TestListPortfolios_BackendDownWithNothingCached(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "db down"})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios", nil, "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Contains(t, resp.Message, "db down")
}

func TestSelectPortfolio(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Portfolio{{ID: 3}, {ID: 4}})
	})
	router, s := setup(t, backend)
	s.FetchPortfolios(context.Background())

	w := doRequest(router, http.MethodPut, "/api/portfolios/current/4", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", w.Header().Get(middleware.CurrentPortfolioHeader))
	id, _ := s.CurrentPortfolioID()
	assert.Equal(t, int64(4), id)

	w = doRequest(router, http.MethodPut, "/api/portfolios/current/99", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPut, "/api/portfolios/current/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePortfolio_Validation(t *testing.T) {
	backend := newBackend()
	backend.POST("/portfolios/", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Portfolio{ID: 9, Name: "New", BaseCurrencyID: 1})
	})
	router, s := setup(t, backend)

	w := doJSON(router, http.MethodPost, "/api/portfolios", gin.H{"name": "New"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/portfolios", gin.H{"name": "New", "base_currency_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "9", w.Header().Get(middleware.CurrentPortfolioHeader))
	assert.Equal(t, int64(9), s.CurrentPortfolio().ID)
}

func TestPositions_TotalsAndDisplay(t *testing.T) {
	backend := newBackend()
	backend.GET("/currencies/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Currency{{ID: 1, Code: "CNY", Symbol: "¥", IsPrimary: true}})
	})
	backend.GET("/portfolios/:id/positions", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`[
			{"id": 1, "portfolio_id": 1, "asset_id": 1, "quantity": "10", "average_cost": "1", "market_value": "1234.5", "total_pnl": "34.5"},
			{"id": 2, "portfolio_id": 1, "asset_id": 2, "quantity": "5", "average_cost": "1", "market_value": null, "total_pnl": null}
		]`))
	})
	router, s := setup(t, backend)
	s.FetchCurrencies(context.Background())

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/positions?as_of_date=2024-01-31", nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.PositionsResponse](t, w)
	assert.Len(t, resp.Positions, 2)
	assert.Equal(t, "2024-01-31", resp.AsOfDate)
	assert.Equal(t, "1234.5", resp.TotalValue.String())
	assert.Equal(t, "¥1,234.50", resp.TotalValueDisplay)
	assert.Equal(t, "¥34.50", resp.TotalPnLDisplay)
}

func TestPositions_FailedRefreshServesOnlySamePortfolio(t *testing.T) {
	backend := newBackend()
	var fail atomic.Bool
	backend.GET("/portfolios/:id/positions", func(c *gin.Context) {
		if fail.Load() {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "positions down"})
			return
		}
		c.JSON(http.StatusOK, []gin.H{{"id": 9, "portfolio_id": 1, "quantity": "1", "average_cost": "1", "market_value": "500"}})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/positions", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	fail.Store(true)

	w = doRequest(router, http.MethodGet, "/api/portfolios/2/positions", nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "positions down")

	w = doRequest(router, http.MethodGet, "/api/portfolios/1/positions", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.PositionsResponse](t, w)
	assert.Equal(t, int64(1), resp.PortfolioID)
	assert.Equal(t, "500", resp.TotalValue.String())
}

func TestPortfolioViews_CurrentResolvesSelection(t *testing.T) {
	backend := newBackend()
	var requested atomic.Value
	backend.GET("/portfolios/:id/summary", func(c *gin.Context) {
		requested.Store(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"portfolio_id": 4, "as_of_date": "2024-01-31", "total_value": "10"})
	})
	router, s := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/current/summary", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no portfolio selected", decode[models.ErrorResponse](t, w).Message)

	s.SetPortfolios([]models.Portfolio{{ID: 3}, {ID: 4}})
	require.NoError(t, s.SelectPortfolio(4))

	w = doRequest(router, http.MethodGet, "/api/portfolios/current/summary", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "4", requested.Load())
	assert.Equal(t, "4", w.Header().Get(middleware.CurrentPortfolioHeader))
}

func TestPositions_BadDate(t *testing.T) {
	router, _ := setup(t, newBackend())

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/positions?as_of_date=31/01/2024", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecalculate(t *testing.T) {
	backend := newBackend()
	var calls atomic.Int32
	backend.POST("/portfolios/:id/recalculate-positions", func(c *gin.Context) {
		calls.Add(1)
		c.JSON(http.StatusOK, gin.H{"message": "recalculated"})
	})
	backend.GET("/portfolios/:id/positions", func(c *gin.Context) {
		calls.Add(1)
		c.JSON(http.StatusOK, []gin.H{{"id": 1, "quantity": "1", "average_cost": "1", "market_value": "50"}})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodPost, "/api/portfolios/1/recalculate?as_of_date=2024-01-01", nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.RecalculateResponse](t, w)
	assert.Equal(t, "recalculated", resp.Result.Message)
	assert.Equal(t, "50", resp.Positions.TotalValue.String())
	assert.Equal(t, int32(2), calls.Load())
}

func TestSummary_BackendNotFound(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/:id/summary", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Portfolio not found"})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/5/summary", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "Portfolio not found", resp.Message)
}

func TestStatistics_Display(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/:id/statistics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total_value": "1000", "total_return": "0.1234", "sharpe_ratio": nil, "volatility": "0.2"})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/statistics?start_date=2024-01-01&end_date=2024-06-30", nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.StatisticsResponse](t, w)
	assert.Equal(t, "12.34%", resp.Display["total_return"])
	assert.Equal(t, "20.00%", resp.Display["volatility"])
	assert.Equal(t, "0.00", resp.Display["sharpe_ratio"])
	assert.Equal(t, "¥1,000.00", resp.Display["total_value"])
}

func TestStatistics_FailureWithoutSnapshot(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/:id/statistics", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "not enough history"})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/statistics", nil, "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "not enough history")
}

func TestStatistics_FailedRefreshServesOnlySamePortfolio(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/:id/statistics", func(c *gin.Context) {
		if c.Param("id") == "2" {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "stats down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total_value": "1000", "total_return": "0.1"})
	})
	router, s := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/statistics", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, s.PortfolioStats())
	assert.Equal(t, int64(1), s.PortfolioStats().PortfolioID)

	w = doRequest(router, http.MethodGet, "/api/portfolios/2/statistics", nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "stats down")
}

func TestAllocation_Percentages(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/:id/allocation", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total_value": 1000, "asset_allocation": gin.H{"stock": gin.H{"value": 600, "percentage": 0.6}}})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/allocation", nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.AllocationViewResponse](t, w)
	assert.Equal(t, "60.00%", resp.Percentages["stock"])
	assert.Equal(t, "1000", resp.TotalValue.String())
}

func TestMonthlyReturns_EmptyIsArray(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/:id/monthly-returns", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`null`))
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/portfolios/1/monthly-returns", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTransactions_ViewsAndFilter(t *testing.T) {
	backend := newBackend()
	var gotFilter string
	backend.GET("/transactions/", func(c *gin.Context) {
		gotFilter = c.Query("portfolio_id")
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "trade_date": "2024-01-01", "action": "buy", "amount": "10"},
			{"id": 2, "trade_date": "2024-03-01", "action": "dividends", "amount": "1"},
			{"id": 3, "trade_date": "2024-02-01", "action": "buy", "amount": "20"},
		})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/transactions?portfolio_id=2", nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "2", gotFilter)
	resp := decode[models.TransactionsResponse](t, w)
	assert.Len(t, resp.Transactions, 3)
	require.Len(t, resp.ByType, 2)
	assert.Equal(t, "buy", resp.ByType[0].Key)
	require.Len(t, resp.Recent, 3)
	assert.Equal(t, int64(2), resp.Recent[0].ID)

	w = doRequest(router, http.MethodGet, "/api/transactions?portfolio_id=x", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTransaction_RequiresTradeDate(t *testing.T) {
	backend := newBackend()
	backend.POST("/transactions/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": 5, "trade_date": "2024-01-02", "action": "buy", "amount": "10"})
	})
	router, s := setup(t, backend)
	body := gin.H{"portfolio_id": 1, "action": "buy", "asset_id": 1, "currency_id": 1, "amount": "10"}

	w := doJSON(router, http.MethodPost, "/api/transactions", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body["trade_date"] = "2024-01-02"
	w = doJSON(router, http.MethodPost, "/api/transactions", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, s.Transactions(), 1)
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestImportTransactions(t *testing.T) {
	backend := newBackend()
	var uploaded atomic.Int32
	backend.POST("/import/transactions/", func(c *gin.Context) {
		uploaded.Add(1)
		c.JSON(http.StatusOK, gin.H{"message": "Imported 2 transactions"})
	})
	router, _ := setup(t, backend)

	body, contentType := multipartBody(t, "trades.csv", "trade_date,action,amount\n2024-01-02,buy,10\n2024-01-03,sell,5\n")
	w := doRequest(router, http.MethodPost, "/api/transactions/import", body, contentType)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.ImportResponse](t, w)
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, "Imported 2 transactions", resp.Message)
	assert.Equal(t, int32(1), uploaded.Load())
}

func TestImportTransactions_InvalidCSVIsNotUploaded(t *testing.T) {
	backend := newBackend()
	var uploaded atomic.Int32
	backend.POST("/import/transactions/", func(c *gin.Context) {
		uploaded.Add(1)
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router, _ := setup(t, backend)

	body, contentType := multipartBody(t, "trades.csv", "date,action\n2024-01-02,buy\n")
	w := doRequest(router, http.MethodPost, "/api/transactions/import", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "invalid_csv", resp.Error)
	assert.Equal(t, int32(0), uploaded.Load())

	w = doRequest(router, http.MethodPost, "/api/transactions/import", strings.NewReader(""), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssets_CRUD(t *testing.T) {
	backend := newBackend()
	backend.GET("/assets/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Asset{{ID: 1, Symbol: "A", Type: models.AssetTypeStock}, {ID: 2, Symbol: "B", Type: models.AssetTypeBond}})
	})
	backend.PUT("/assets/:id", func(c *gin.Context) {
		var req models.AssetRequest
		_ = c.ShouldBindJSON(&req)
		c.JSON(http.StatusOK, models.Asset{ID: 2, Symbol: req.Symbol, Name: req.Name, Type: req.Type, CurrencyID: req.CurrencyID})
	})
	backend.DELETE("/assets/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	})
	router, s := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/assets", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.AssetsResponse](t, w)
	assert.Len(t, resp.ByType, 2)

	w = doJSON(router, http.MethodPut, "/api/assets/2", gin.H{"symbol": "B", "name": "Treasury", "type": "bond", "currency_id": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Treasury", s.Assets()[1].Name)

	w = doJSON(router, http.MethodPut, "/api/assets/2", gin.H{"symbol": "B"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/assets/2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.Assets(), 1)
}

func TestCurrencies(t *testing.T) {
	backend := newBackend()
	backend.GET("/currencies/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Currency{{ID: 1, Code: "USD"}, {ID: 2, Code: "CNY", IsPrimary: true}})
	})
	router, _ := setup(t, backend)

	w := doRequest(router, http.MethodGet, "/api/currencies", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.CurrenciesResponse](t, w)
	require.NotNil(t, resp.Primary)
	assert.Equal(t, "CNY", resp.Primary.Code)
}

func TestSettings_SaveCoercesValue(t *testing.T) {
	backend := newBackend()
	var got models.SaveSettingRequest
	backend.POST("/settings/", func(c *gin.Context) {
		_ = c.ShouldBindJSON(&got)
		c.JSON(http.StatusOK, models.Setting{Key: got.Key, Value: got.Value})
	})
	backend.GET("/settings/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Setting{{Key: got.Key, Value: got.Value}})
	})
	router, _ := setup(t, backend)

	w := doJSON(router, http.MethodPost, "/api/settings", gin.H{"key": "max_items", "value": 42})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "42", got.Value)

	for raw, expected := range map[string]string{
		`1000000`:       "1000000",
		`12345678`:      "12345678",
		`0.25`:          "0.25",
		`[1, 2]`:        "1,2",
		`{"a": 1}`:      "[object Object]",
		`null`:          "null",
		`"already str"`: "already str",
	} {
		body := `{"key": "max_items", "value": ` + raw + `}`
		w = doRequest(router, http.MethodPost, "/api/settings", strings.NewReader(body), "application/json")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, expected, got.Value, raw)
	}

	w = doJSON(router, http.MethodPost, "/api/settings", gin.H{"value": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "max_items")
}

func TestStatusAndClearError(t *testing.T) {
	backend := newBackend()
	backend.GET("/assets/", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "assets down"})
	})
	router, s := setup(t, backend)
	s.SetAssets([]models.Asset{{ID: 1}})

	w := doRequest(router, http.MethodGet, "/api/assets", nil, "")
	require.Equal(t, http.StatusOK, w.Code, "a failed refresh still serves the previous list")

	w = doRequest(router, http.MethodGet, "/api/status", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[StatusResponse](t, w)
	assert.False(t, resp.Loading)
	assert.Contains(t, resp.Error, "assets down")
	assert.Contains(t, resp.Operations[store.OpFetchAssets].Err, "assets down")

	w = doRequest(router, http.MethodDelete, "/api/status/error", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[StatusResponse](t, w).Error)
}

func TestBootstrap(t *testing.T) {
	backend := newBackend()
	backend.GET("/portfolios/", func(c *gin.Context) { c.JSON(http.StatusOK, []models.Portfolio{{ID: 1}}) })
	backend.GET("/assets/", func(c *gin.Context) { c.JSON(http.StatusOK, []models.Asset{}) })
	backend.GET("/currencies/", func(c *gin.Context) { c.JSON(http.StatusOK, []models.Currency{}) })
	backend.GET("/exchange-rates/", func(c *gin.Context) { c.JSON(http.StatusOK, []models.ExchangeRate{}) })
	backend.GET("/settings/", func(c *gin.Context) { c.JSON(http.StatusOK, []models.Setting{}) })
	router, s := setup(t, backend)

	w := doRequest(router, http.MethodPost, "/api/bootstrap", nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(1), s.CurrentPortfolio().ID)
	resp := decode[StatusResponse](t, w)
	assert.Len(t, resp.Operations, 5)
}
