package handlers

import (
	"github.com/epeers/portview/internal/middleware"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the view server's endpoints on router.
// backend is the REST root reported by /health.
func RegisterRoutes(router *gin.Engine, s *store.Store, backend string) {
	statusHandler := NewStatusHandler(s, backend)
	portfolioHandler := NewPortfolioHandler(s)
	transactionHandler := NewTransactionHandler(s)
	assetHandler := NewAssetHandler(s)
	settingsHandler := NewSettingsHandler(s)

	router.GET("/health", statusHandler.Health)

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.CurrentPortfolio(s))
	{
		apiGroup.GET("/status", statusHandler.Status)
		apiGroup.DELETE("/status/error", statusHandler.ClearError)
		apiGroup.POST("/bootstrap", statusHandler.Bootstrap)

		apiGroup.GET("/portfolios", portfolioHandler.List)
		apiGroup.POST("/portfolios", portfolioHandler.Create)
		apiGroup.PUT("/portfolios/current/:id", portfolioHandler.Select)
		apiGroup.GET("/portfolios/:id/positions", portfolioHandler.Positions)
		apiGroup.POST("/portfolios/:id/recalculate", portfolioHandler.Recalculate)
		apiGroup.GET("/portfolios/:id/summary", portfolioHandler.Summary)
		apiGroup.GET("/portfolios/:id/statistics", portfolioHandler.Statistics)
		apiGroup.GET("/portfolios/:id/performance-metrics", portfolioHandler.PerformanceMetrics)
		apiGroup.GET("/portfolios/:id/performance-history", portfolioHandler.PerformanceHistory)
		apiGroup.GET("/portfolios/:id/monthly-returns", portfolioHandler.MonthlyReturns)
		apiGroup.GET("/portfolios/:id/allocation", portfolioHandler.Allocation)

		apiGroup.GET("/transactions", transactionHandler.List)
		apiGroup.POST("/transactions", transactionHandler.Create)
		apiGroup.POST("/transactions/import", transactionHandler.Import)

		apiGroup.GET("/assets", assetHandler.List)
		apiGroup.POST("/assets", assetHandler.Create)
		apiGroup.PUT("/assets/:id", assetHandler.Update)
		apiGroup.DELETE("/assets/:id", assetHandler.Delete)
		apiGroup.GET("/currencies", assetHandler.Currencies)
		apiGroup.GET("/exchange-rates", assetHandler.ExchangeRates)

		apiGroup.GET("/settings", settingsHandler.List)
		apiGroup.GET("/settings/:key", settingsHandler.Get)
		apiGroup.POST("/settings", settingsHandler.Save)
	}
}
