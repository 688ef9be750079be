package handlers

import (
	"net/http"

	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
)

// StatusResponse is the store's loading and error state
type StatusResponse struct {
	Loading    bool                        `json:"loading"`
	Error      string                      `json:"error"`
	Operations map[store.Op]store.OpStatus `json:"operations"`
}

// StatusHandler handles health, status and bootstrap endpoints
type StatusHandler struct {
	store   *store.Store
	backend string
}

// NewStatusHandler creates a new StatusHandler; backend is the REST root reported by /health
func NewStatusHandler(s *store.Store, backend string) *StatusHandler {
	return &StatusHandler{
		store:   s,
		backend: backend,
	}
}

// Health handles GET /health
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Backend: h.backend})
}

// Status handles GET /api/status
// @Summary Get store status
// @Description Whether any operation is in flight, the most recent error, and the state of each operation
// @Tags status
// @Produce json
// @Success 200 {object} handlers.StatusResponse
// @Router /api/status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// ClearError handles DELETE /api/status/error
// @Summary Clear the most recent error
// @Tags status
// @Produce json
// @Success 200 {object} handlers.StatusResponse
// @Router /api/status/error [delete]
func (h *StatusHandler) ClearError(c *gin.Context) {
	h.store.ClearError()
	c.JSON(http.StatusOK, h.snapshot())
}

// Bootstrap handles POST /api/bootstrap
// @Summary Load reference data
// @Description Fetch portfolios, assets, currencies, exchange rates and settings concurrently
// @Tags status
// @Produce json
// @Success 200 {object} handlers.StatusResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/bootstrap [post]
func (h *StatusHandler) Bootstrap(c *gin.Context) {
	if err := h.store.Bootstrap(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.snapshot())
}

func (h *StatusHandler) snapshot() StatusResponse {
	return StatusResponse{
		Loading:    h.store.Loading(),
		Error:      h.store.Err(),
		Operations: h.store.Statuses(),
	}
}
