package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const loanDateLayout = "2006-01-02"

// LoanHandler handles loan-related HTTP requests
type LoanHandler struct {
	loanService *service.LoanService
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// CreateLoanRequest represents the create loan request body
type CreateLoanRequest struct {
	Name      string      `json:"name"`
	Amount    json.Number `json:"amount"`
	Paid      json.Number `json:"paid"`
	Type      string      `json:"type"`
	DateTaken *string     `json:"date_taken,omitempty"`
	Source    string      `json:"source"`
}

// LoanResponse represents a loan in API responses
type LoanResponse struct {
	ID        int32   `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
	Type      string  `json:"type"`
	DateTaken string  `json:"date_taken"`
	Source    string  `json:"source"`
}

// CreateLoan godoc
// @Summary Create a loan
// @Description Record a borrowed or lent loan
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLoanRequest true "Loan creation request"
// @Success 201 {object} LoanResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /loans [post]
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid number"},
		})
	}

	// Paid defaults to zero when omitted
	paid := decimal.Zero
	if req.Paid.String() != "" {
		paid, err = decimal.NewFromString(req.Paid.String())
		if err != nil {
			return NewValidationError(c, "Invalid paid amount", []ValidationError{
				{Field: "paid", Message: "Must be a valid number"},
			})
		}
	}

	var dateTaken time.Time
	if req.DateTaken != nil && *req.DateTaken != "" {
		dateTaken, err = time.Parse(loanDateLayout, *req.DateTaken)
		if err != nil {
			return NewValidationError(c, "Invalid date_taken", []ValidationError{
				{Field: "date_taken", Message: "Must be a YYYY-MM-DD date"},
			})
		}
	}

	input := service.CreateLoanInput{
		Name:      req.Name,
		Amount:    amount,
		Paid:      paid,
		Type:      domain.LoanType(req.Type),
		DateTaken: dateTaken,
		Source:    req.Source,
	}

	loan, err := h.loanService.CreateLoan(userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amounts must not be negative"},
			})
		}
		if errors.Is(err, domain.ErrInvalidLoanType) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: borrowed, lent"},
			})
		}
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to create loan")
		return NewInternalError(c, "Failed to create loan")
	}

	log.Info().Int32("user_id", userID).Int32("loan_id", loan.ID).Str("type", string(loan.Type)).Msg("Loan created")

	return c.JSON(http.StatusCreated, toLoanResponse(loan))
}

// GetLoans godoc
// @Summary List loans
// @Description Get the caller's loans with computed remaining balances
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} LoanResponse
// @Failure 401 {object} ProblemDetails
// @Router /loans [get]
func (h *LoanHandler) GetLoans(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	loans, err := h.loanService.GetLoans(userID)
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to get loans")
		return NewInternalError(c, "Failed to get loans")
	}

	response := make([]LoanResponse, len(loans))
	for i, loan := range loans {
		response[i] = toLoanResponse(loan)
	}
	return c.JSON(http.StatusOK, response)
}

func toLoanResponse(loan *domain.Loan) LoanResponse {
	return LoanResponse{
		ID:        loan.ID,
		Name:      loan.Name,
		Amount:    loan.Amount.InexactFloat64(),
		Paid:      loan.Paid.InexactFloat64(),
		Remaining: loan.Remaining().InexactFloat64(),
		Type:      string(loan.Type),
		DateTaken: loan.DateTaken.Format(loanDateLayout),
		Source:    loan.Source,
	}
}
