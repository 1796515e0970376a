package models

type FinancialData struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	MonthlyIncome   *float64 `json:"monthly_income"`
	MonthlyExpenses *float64 `json:"monthly_expenses"`
	SavingsAmount   *float64 `json:"savings_amount"`
	DebtAmount      *float64 `json:"debt_amount"`
}
