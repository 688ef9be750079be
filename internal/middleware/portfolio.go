package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// CurrentPortfolioHeader carries the id of the selected portfolio on every response
	CurrentPortfolioHeader = "X-Current-Portfolio"

	CurrentPortfolioKey = "current_portfolio_id"
)

// PortfolioSelection reports the selected portfolio. *store.Store implements it.
type PortfolioSelection interface {
	CurrentPortfolioID() (int64, bool)
}

// CurrentPortfolio exposes the selection at the start of the request in the
// context and in the X-Current-Portfolio header. Nothing is set when no
// portfolio is selected.
func CurrentPortfolio(sel PortfolioSelection) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := sel.CurrentPortfolioID(); ok {
			c.Set(CurrentPortfolioKey, id)
			c.Header(CurrentPortfolioHeader, strconv.FormatInt(id, 10))
		}
		c.Next()
	}
}

// SetCurrentPortfolioHeader overrides the header for handlers that change the selection
func SetCurrentPortfolioHeader(c *gin.Context, id int64) {
	c.Set(CurrentPortfolioKey, id)
	c.Header(CurrentPortfolioHeader, strconv.FormatInt(id, 10))
}

// GetCurrentPortfolioID retrieves the selected portfolio id from the context
func GetCurrentPortfolioID(c *gin.Context) (int64, bool) {
	id, exists := c.Get(CurrentPortfolioKey)
	if !exists {
		return 0, false
	}
	return id.(int64), true
}
