package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/epeers/portview/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient serves router behind an httptest server and returns a client pointed at it
func newTestClient(t *testing.T, router *gin.Engine) *Client {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return NewClientWithHTTPClient(server.URL+"/", server.Client())
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	c := NewClient("http://localhost:8000/", 0)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, "http://localhost:8000", c.BaseURL())

	c = NewClient("http://localhost:8000", 3*time.Second)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
}

func TestListPortfolios(t *testing.T) {
	router := newRouter()
	router.GET("/portfolios/", func(c *gin.Context) {
		assert.Equal(t, "application/json", c.GetHeader("Accept"))
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "name": "Core", "base_currency_id": 1, "created_at": "2024-01-05T08:00:00"},
		})
	})
	client := newTestClient(t, router)

	portfolios, err := client.ListPortfolios(context.Background())
	require.NoError(t, err)
	require.Len(t, portfolios, 1)
	assert.Equal(t, "Core", portfolios[0].Name)
	assert.Equal(t, "2024-01-05", portfolios[0].CreatedAt.String())
}

func TestGetPositions_DecodesNullableDecimals(t *testing.T) {
	router := newRouter()
	var gotQuery string
	router.GET("/portfolios/:id/positions", func(c *gin.Context) {
		gotQuery = c.Request.URL.RawQuery
		c.Data(http.StatusOK, "application/json", []byte(`[
			{"id": 1, "portfolio_id": 3, "asset_id": 9, "position_date": "2024-03-01",
			 "quantity": "100", "average_cost": 12.5, "current_price": null, "market_value": "1300.40", "total_pnl": null}
		]`))
	})
	client := newTestClient(t, router)

	positions, err := client.GetPositions(context.Background(), 3, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "as_of_date=2024-03-01", gotQuery)
	require.Len(t, positions, 1)
	p := positions[0]
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(100)))
	assert.True(t, p.AverageCost.Equal(decimal.RequireFromString("12.5")))
	assert.False(t, p.CurrentPrice.Valid)
	assert.True(t, p.MarketValue.Valid)
	assert.False(t, p.TotalPnL.Valid)
}

func TestGetStatistics_OmitsZeroBounds(t *testing.T) {
	router := newRouter()
	var queries []string
	router.GET("/portfolios/:id/statistics", func(c *gin.Context) {
		queries = append(queries, c.Request.URL.RawQuery)
		c.JSON(http.StatusOK, gin.H{"total_value": "10", "sharpe_ratio": nil})
	})
	client := newTestClient(t, router)
	ctx := context.Background()

	stats, err := client.GetStatistics(ctx, 1, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.False(t, stats.SharpeRatio.Valid)

	_, err = client.GetStatistics(ctx, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	require.NoError(t, err)
	_, err = client.GetStatistics(ctx, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, []string{"", "start_date=2024-01-01", "end_date=2024-02-01&start_date=2024-01-01"}, queries)
}

func TestGetAllocation_ByType(t *testing.T) {
	router := newRouter()
	router.GET("/portfolios/:id/allocation", func(c *gin.Context) {
		assert.Equal(t, "type", c.Query("by"))
		c.JSON(http.StatusOK, gin.H{
			"portfolio_id":     2,
			"total_value":      1000,
			"asset_allocation": gin.H{"stock": gin.H{"value": 700, "percentage": 0.7}, "cash": gin.H{"value": 300, "percentage": 0.3}},
		})
	})
	client := newTestClient(t, router)

	allocation, err := client.GetAllocation(context.Background(), 2, time.Time{})
	require.NoError(t, err)
	assert.Len(t, allocation.AssetAllocation, 2)
	assert.True(t, allocation.AssetAllocation["cash"].Value.Equal(decimal.NewFromInt(300)))
}

func TestRecalculatePositions_SendsPostWithoutBody(t *testing.T) {
	router := newRouter()
	router.POST("/portfolios/:id/recalculate-positions", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		assert.Empty(t, body)
		assert.Equal(t, "2024-01-01", c.Query("as_of_date"))
		c.JSON(http.StatusOK, gin.H{"message": "ok", "positions_updated": 4})
	})
	client := newTestClient(t, router)

	result, err := client.RecalculatePositions(context.Background(), 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 4, result.PositionsUpdated)
}

func TestCreateTransaction_RequestBody(t *testing.T) {
	router := newRouter()
	router.POST("/transactions/", func(c *gin.Context) {
		assert.Equal(t, "application/json", c.GetHeader("Content-Type"))
		var req models.CreateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.Transaction{
			ID: 11, PortfolioID: req.PortfolioID, TradeDate: req.TradeDate, Action: req.Action,
			AssetID: req.AssetID, Amount: req.Amount, Quantity: req.Quantity, CurrencyID: req.CurrencyID,
		})
	})
	client := newTestClient(t, router)

	tx, err := client.CreateTransaction(context.Background(), &models.CreateTransactionRequest{
		PortfolioID: 1,
		TradeDate:   models.NewDate(2024, time.March, 4),
		Action:      models.ActionBuy,
		AssetID:     2,
		Quantity:    decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Amount:      decimal.RequireFromString("155.5"),
		CurrencyID:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), tx.ID)
	assert.Equal(t, "2024-03-04", tx.TradeDate.String())
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("155.5")))
}

func TestListTransactions_PortfolioFilter(t *testing.T) {
	router := newRouter()
	var queries []string
	router.GET("/transactions/", func(c *gin.Context) {
		queries = append(queries, c.Request.URL.RawQuery)
		c.JSON(http.StatusOK, []gin.H{})
	})
	client := newTestClient(t, router)
	ctx := context.Background()

	_, err := client.ListTransactions(ctx, 0)
	require.NoError(t, err)
	_, err = client.ListTransactions(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "portfolio_id=7"}, queries)
}

func TestImportTransactions_Multipart(t *testing.T) {
	router := newRouter()
	router.POST("/import/transactions/", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "no file"})
			return
		}
		f, _ := fh.Open()
		defer f.Close()
		content, _ := io.ReadAll(f)
		c.JSON(http.StatusOK, gin.H{"message": fh.Filename + ":" + string(content)})
	})
	client := newTestClient(t, router)

	result, err := client.ImportTransactions(context.Background(), "trades.csv", strings.NewReader("trade_date,action,amount\n"))
	require.NoError(t, err)
	assert.Equal(t, "trades.csv:trade_date,action,amount\n", result.Message)
}

func TestUpdateAsset_FillsMissingID(t *testing.T) {
	router := newRouter()
	router.PUT("/assets/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"symbol": "AAA", "name": "Renamed", "type": "etf", "currency_id": 1})
	})
	client := newTestClient(t, router)

	asset, err := client.UpdateAsset(context.Background(), 12, &models.AssetRequest{Symbol: "AAA", Name: "Renamed", Type: models.AssetTypeETF, CurrencyID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(12), asset.ID)
	assert.Equal(t, models.AssetTypeETF, asset.Type)
}

func TestDeleteAsset_EmptyBody(t *testing.T) {
	router := newRouter()
	router.DELETE("/assets/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	client := newTestClient(t, router)

	assert.NoError(t, client.DeleteAsset(context.Background(), 3))
}

func TestGetSetting_EscapesKey(t *testing.T) {
	router := newRouter()
	var gotKey string
	router.GET("/settings/:key", func(c *gin.Context) {
		gotKey = c.Param("key")
		c.JSON(http.StatusOK, gin.H{"key": gotKey, "value": "x", "description": nil})
	})
	client := newTestClient(t, router)

	setting, err := client.GetSetting(context.Background(), "ui theme")
	require.NoError(t, err)
	assert.Equal(t, "ui theme", gotKey)
	assert.Nil(t, setting.Description)
}

func TestSaveSetting_FallsBackToRequest(t *testing.T) {
	router := newRouter()
	router.POST("/settings/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "saved"})
	})
	client := newTestClient(t, router)

	setting, err := client.SaveSetting(context.Background(), &models.SaveSettingRequest{Key: "k", Value: "v"})
	require.NoError(t, err)
	assert.Equal(t, "k", setting.Key)
	assert.Equal(t, "v", setting.Value)
}

func TestErrorResponses(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"string detail", http.StatusNotFound, `{"detail":"Portfolio not found"}`, "Portfolio not found"},
		{"validation detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","name"],"msg":"field required"}]}`, `[{"loc":["body","name"],"msg":"field required"}]`},
		{"no body", http.StatusInternalServerError, ``, "Internal Server Error"},
		{"non-json body", http.StatusBadGateway, `<html>bad gateway</html>`, "Bad Gateway"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter()
			router.GET("/currencies/", func(c *gin.Context) {
				c.Data(tc.status, "application/json", []byte(tc.body))
			})
			client := newTestClient(t, router)

			_, err := client.ListCurrencies(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.expected, apiErr.Message)
		})
	}
}

func TestRequestFailure_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	_, err := client.ListAssets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestMalformedResponse(t *testing.T) {
	router := newRouter()
	router.GET("/exchange-rates/", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"not":"a list"}`))
	})
	client := newTestClient(t, router)

	_, err := client.ListExchangeRates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal response")
}
