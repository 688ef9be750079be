package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/epeers/portview/internal/api"
	"github.com/epeers/portview/internal/middleware"
	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/store"
	"github.com/epeers/portview/internal/util"
	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid " + what + " ID",
		})
		return 0, false
	}
	return id, true
}

// portfolioParam reads the :id path parameter of a portfolio view. The literal
// "current" resolves to the portfolio selected when the request started.
func portfolioParam(c *gin.Context) (int64, bool) {
	if c.Param("id") != "current" {
		return parseID(c, "id", "portfolio")
	}
	id, ok := middleware.GetCurrentPortfolioID(c)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "no portfolio selected",
		})
		return 0, false
	}
	return id, true
}

// parseDate reads an optional YYYY-MM-DD query parameter
func parseDate(c *gin.Context, name string) (time.Time, bool) {
	t, err := util.ParseOptionalDate(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: name + " must be YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return t, true
}

// writeError maps a store or backend error onto a response
func writeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNoPortfolio) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: apiErr.Message,
			})
		case apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: apiErr.Message,
			})
		default:
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "backend_error",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "backend_unavailable",
		Message: err.Error(),
	})
}

// writeStaleError answers a read whose best-effort refresh failed and left nothing to serve
func writeStaleError(c *gin.Context, s *store.Store, op store.Op) {
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "backend_error",
		Message: s.Status(op).Err,
	})
}
