package models

import "time"

// TransactionType distinguishes income from expense entries.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is a personal ledger entry, independent of groups.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// Amount is the transaction amount, always positive; Type carries the
	// direction.
	Amount float64 `json:"amount"`

	// Category is the spending/income category (e.g. "Food", "Salary").
	Category string `json:"category"`

	// SubCategory optionally refines the category.
	SubCategory string `json:"subCategory,omitempty"`

	// Type is INCOME or EXPENSE.
	Type TransactionType `json:"type"`

	// Note is a free-form description.
	Note string `json:"note"`

	// Date is when the transaction happened.
	Date time.Time `json:"date"`

	// Merchant is the counterparty, when known (e.g. from an SMS import).
	Merchant string `json:"merchant,omitempty"`
}
