package calculator

import "github.com/smartfin/smartfin/internal/models"

// Summary aggregates a personal transaction list for the dashboard.
type Summary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	// ExpenseByCategory holds per-category expense totals; categories with
	// no spending are omitted.
	ExpenseByCategory map[string]float64 `json:"expenseByCategory"`
}

// Summarize computes income/expense totals and the per-category expense
// breakdown used for visualization.
func Summarize(transactions []models.Transaction) Summary {
	s := Summary{ExpenseByCategory: make(map[string]float64)}
	for _, t := range transactions {
		switch t.Type {
		case models.Income:
			s.TotalIncome += t.Amount
		case models.Expense:
			s.TotalExpense += t.Amount
			s.ExpenseByCategory[t.Category] += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}
