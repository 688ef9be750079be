package handlers

import (
	"net/http"

	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles settings endpoints
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{
		store: s,
	}
}

// List handles GET /api/settings
// @Summary List settings
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]models.Setting
// @Failure 502 {object} models.ErrorResponse
// @Router /api/settings [get]
func (h *SettingsHandler) List(c *gin.Context) {
	h.store.FetchSettings(c.Request.Context())

	settings := h.store.Settings()
	if len(settings) == 0 && h.store.Status(store.OpFetchSettings).Err != "" {
		writeStaleError(c, h.store, store.OpFetchSettings)
		return
	}
	if settings == nil {
		settings = map[string]models.Setting{}
	}

	c.JSON(http.StatusOK, settings)
}

// Get handles GET /api/settings/:key
// @Summary Get a setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} models.Setting
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/settings/{key} [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.store.FetchSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// Save handles POST /api/settings
// @Summary Save a setting
// @Description Create or overwrite a setting; any JSON value is stored as its string form
// @Tags settings
// @Accept json
// @Produce json
// @Param setting body models.SaveSettingInput true "Setting to save"
// @Success 200 {object} models.Setting
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/settings [post]
func (h *SettingsHandler) Save(c *gin.Context) {
	var req models.SaveSettingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	setting, err := h.store.SaveSetting(c.Request.Context(), req.Key, req.Value, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}
