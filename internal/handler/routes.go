package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, categoryHandler *CategoryHandler, transactionHandler *TransactionHandler, loanHandler *LoanHandler, goalHandler *GoalHandler, budgetHandler *BudgetHandler, dashboardHandler *DashboardHandler) {
	// Public auth routes
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Token)

	// Everything below requires a bearer token
	protected := e.Group("")
	protected.Use(authMiddleware.Authenticate())
	protected.Use(middleware.RateLimitMiddleware(rateLimiter))

	protected.GET("/users/me", authHandler.Me)

	protected.GET("/categories", categoryHandler.GetCategories)

	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.GET("/transactions", transactionHandler.GetTransactions)

	protected.POST("/loans", loanHandler.CreateLoan)
	protected.GET("/loans", loanHandler.GetLoans)

	protected.POST("/goals", goalHandler.CreateGoal)
	protected.GET("/goals", goalHandler.GetGoals)

	protected.POST("/budgets", budgetHandler.CreateBudget)
	protected.GET("/budgets", budgetHandler.GetBudgets)

	protected.GET("/summary", dashboardHandler.GetSummary)
	protected.GET("/charts/expense-by-category", dashboardHandler.GetExpenseByCategory)
}
