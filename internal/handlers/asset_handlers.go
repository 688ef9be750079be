package handlers

import (
	"net/http"

	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
)

// AssetHandler handles asset, currency and exchange rate endpoints
type AssetHandler struct {
	store *store.Store
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(s *store.Store) *AssetHandler {
	return &AssetHandler{
		store: s,
	}
}

// List handles GET /api/assets
// @Summary List assets
// @Description Refresh the asset list and return it grouped by asset type
// @Tags assets
// @Produce json
// @Success 200 {object} models.AssetsResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	h.store.FetchAssets(c.Request.Context())

	assets := h.store.Assets()
	if assets == nil {
		if h.store.Status(store.OpFetchAssets).Err != "" {
			writeStaleError(c, h.store, store.OpFetchAssets)
			return
		}
		assets = []models.Asset{}
	}

	c.JSON(http.StatusOK, models.AssetsResponse{
		Assets: assets,
		ByType: h.store.AssetsByType(),
	})
}

// Create handles POST /api/assets
// @Summary Create an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body models.AssetRequest true "Asset to create"
// @Success 201 {object} models.Asset
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	asset, err := h.store.CreateAsset(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// Update handles PUT /api/assets/:id
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path int true "Asset ID"
// @Param asset body models.AssetRequest true "Replacement asset"
// @Success 200 {object} models.Asset
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "asset")
	if !ok {
		return
	}

	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	asset, err := h.store.UpdateAsset(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /api/assets/:id
// @Summary Delete an asset
// @Tags assets
// @Produce json
// @Param id path int true "Asset ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "asset")
	if !ok {
		return
	}

	if err := h.store.DeleteAsset(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "asset deleted"})
}

// Currencies handles GET /api/currencies
// @Summary List currencies
// @Tags assets
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/currencies [get]
func (h *AssetHandler) Currencies(c *gin.Context) {
	h.store.FetchCurrencies(c.Request.Context())

	currencies := h.store.Currencies()
	if currencies == nil {
		if h.store.Status(store.OpFetchCurrencies).Err != "" {
			writeStaleError(c, h.store, store.OpFetchCurrencies)
			return
		}
		currencies = []models.Currency{}
	}

	c.JSON(http.StatusOK, models.CurrenciesResponse{
		Currencies: currencies,
		Primary:    h.store.PrimaryCurrency(),
	})
}

// ExchangeRates handles GET /api/exchange-rates
// @Summary List exchange rates
// @Tags assets
// @Produce json
// @Success 200 {array} models.ExchangeRate
// @Failure 502 {object} models.ErrorResponse
// @Router /api/exchange-rates [get]
func (h *AssetHandler) ExchangeRates(c *gin.Context) {
	h.store.FetchExchangeRates(c.Request.Context())

	rates := h.store.ExchangeRates()
	if rates == nil {
		if h.store.Status(store.OpFetchExchangeRates).Err != "" {
			writeStaleError(c, h.store, store.OpFetchExchangeRates)
			return
		}
		rates = []models.ExchangeRate{}
	}

	c.JSON(http.StatusOK, rates)
}
