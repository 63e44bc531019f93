// Package server assembles the local bridge's gin router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finplanner/internal/app"
	"finplanner/internal/config"
	_ "finplanner/internal/docs" // swagger docs
	"finplanner/internal/handlers"
	"finplanner/internal/middleware"
	"finplanner/internal/validator"
)

// NewRouter builds the bridge: middleware, swagger, health check and the
// /api/v1 routes, every one of them scoped to cfg.OwnerID.
func NewRouter(cfg *config.Config, svc *app.Services) *gin.Engine {
	validator.Register()

	profileHandler := handlers.NewProfileHandler(svc.Profile, svc.Stats)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses)
	sipHandler := handlers.NewSipHandler(svc.Sips)
	goalHandler := handlers.NewGoalHandler(svc.Goals)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio, svc.Profile)
	analysisHandler := handlers.NewAnalysisHandler(svc.Analysis)
	dataHandler := handlers.NewDataHandler(svc.Data)

	router := gin.New()
	router.Use(gin.Recovery())
	if !cfg.AllowRemote {
		router.Use(middleware.LocalOnly())
	}
	router.Use(middleware.LocalCORS())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.OwnerScope(cfg.OwnerID))

	v1.GET("/profile", profileHandler.GetProfile)
	v1.PUT("/profile", profileHandler.UpdateProfile)

	stats := v1.Group("/stats")
	stats.GET("", profileHandler.GetStats)
	stats.PUT("", profileHandler.UpdateStats)
	stats.POST("/recompute", profileHandler.RecomputeStats)

	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	v1.GET("/sip", sipHandler.GetActiveSip)
	v1.PUT("/sip", sipHandler.UpdateActiveSip)
	sips := v1.Group("/sips")
	sips.GET("", sipHandler.ListSips)
	sips.POST("", sipHandler.CreateSip)
	sips.POST("/:id/activate", sipHandler.ActivateSip)

	goals := v1.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.PUT("/:id/progress", goalHandler.SetGoalProgress)
	goals.DELETE("/:id", goalHandler.ArchiveGoal)

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/recent", transactionHandler.ListRecentTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)

	portfolio := v1.Group("/portfolio")
	portfolio.GET("", portfolioHandler.ListPortfolio)
	portfolio.POST("", portfolioHandler.CreatePortfolioItem)
	portfolio.GET("/:itemId", portfolioHandler.GetPortfolioItem)
	portfolio.PUT("/:itemId", portfolioHandler.UpdatePortfolioItem)
	portfolio.DELETE("/:itemId", portfolioHandler.DeletePortfolioItem)

	analysis := v1.Group("/analysis")
	analysis.GET("/budget", analysisHandler.BudgetSummary)
	analysis.GET("/sip", analysisHandler.SipProjection)
	analysis.GET("/goal", analysisHandler.GoalProjection)

	data := v1.Group("/data")
	data.GET("/export", dataHandler.Export)
	data.POST("/import", dataHandler.Import)
	data.POST("/reset", dataHandler.Reset)
	data.GET("/stats", dataHandler.Stats)

	return router
}
