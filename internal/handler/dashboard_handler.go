package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// DashboardHandler serves the aggregate report endpoints
type DashboardHandler struct {
	summaryService *service.SummaryService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(summaryService *service.SummaryService) *DashboardHandler {
	return &DashboardHandler{summaryService: summaryService}
}

// SummaryResponse represents the financial summary report
type SummaryResponse struct {
	TotalIncome          float64 `json:"total_income"`
	TotalExpense         float64 `json:"total_expense"`
	Balance              float64 `json:"balance"`
	TotalDebt            float64 `json:"total_debt"`
	TotalLentOutstanding float64 `json:"total_lent_outstanding"`
}

// CategoryExpenseResponse represents one slice of the expense breakdown
type CategoryExpenseResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// GetSummary godoc
// @Summary Financial summary
// @Description Totals of income, expenses, balance and outstanding loans
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} ProblemDetails
// @Router /summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	summary, err := h.summaryService.GetSummary(userID)
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to compute summary")
		return NewInternalError(c, "Failed to compute summary")
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		TotalIncome:          summary.TotalIncome.InexactFloat64(),
		TotalExpense:         summary.TotalExpense.InexactFloat64(),
		Balance:              summary.Balance.InexactFloat64(),
		TotalDebt:            summary.TotalDebt.InexactFloat64(),
		TotalLentOutstanding: summary.TotalLentOutstanding.InexactFloat64(),
	})
}

// GetExpenseByCategory godoc
// @Summary Expense breakdown by category
// @Description Per-category expense totals for chart rendering, largest first
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CategoryExpenseResponse
// @Failure 401 {object} ProblemDetails
// @Router /charts/expense-by-category [get]
func (h *DashboardHandler) GetExpenseByCategory(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	breakdown, err := h.summaryService.GetExpenseByCategory(userID)
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to compute expense breakdown")
		return NewInternalError(c, "Failed to compute expense breakdown")
	}

	response := make([]CategoryExpenseResponse, len(breakdown))
	for i, entry := range breakdown {
		response[i] = CategoryExpenseResponse{
			Category: entry.CategoryName,
			Total:    entry.Total.InexactFloat64(),
		}
	}
	return c.JSON(http.StatusOK, response)
}
