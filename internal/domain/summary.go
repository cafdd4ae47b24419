package domain

import "github.com/shopspring/decimal"

// Summary contains the all-time dashboard totals for one user
type Summary struct {
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalExpense         decimal.Decimal `json:"total_expense"`
	Balance              decimal.Decimal `json:"balance"`
	TotalDebt            decimal.Decimal `json:"total_debt"`
	TotalLentOutstanding decimal.Decimal `json:"total_lent_outstanding"`
}
