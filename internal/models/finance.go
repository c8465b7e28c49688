package models

import "time"

// EMI tracks a loan repaid in fixed monthly installments.
type EMI struct {
	// ID is the unique identifier for the EMI (UUID format).
	ID string `json:"id"`

	// LoanName is the display name of the loan (e.g. "Home Loan").
	LoanName string `json:"loanName"`

	// Amount is the fixed monthly installment.
	Amount float64 `json:"amount"`

	// InterestRate is the annual interest rate in percent, display only.
	InterestRate float64 `json:"interestRate"`

	// TenureMonths is the total number of installments.
	TenureMonths int `json:"tenureMonths"`

	// StartDate is when the loan started.
	StartDate time.Time `json:"startDate"`

	// PaidMonths is how many installments have been paid, capped at
	// TenureMonths.
	PaidMonths int `json:"paidMonths"`
}

// Progress returns the repaid fraction in percent.
func (e *EMI) Progress() float64 {
	if e.TenureMonths == 0 {
		return 0
	}
	return float64(e.PaidMonths) / float64(e.TenureMonths) * 100
}

// Remaining estimates the outstanding balance from the installment amount.
// The real amortization schedule is the bank's; this is a display estimate.
func (e *EMI) Remaining() float64 {
	return float64(e.TenureMonths-e.PaidMonths) * e.Amount
}

// Budget is a per-category monthly spending limit.
type Budget struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
}

// Goal is a savings target with a deadline.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Deadline      time.Time `json:"deadline"`
}

// Progress returns completion in percent, capped at 100.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}

// InvestmentType enumerates the supported investment classes.
type InvestmentType string

const (
	FixedDeposit InvestmentType = "FD"
	MutualFund   InvestmentType = "MUTUAL_FUND"
	Stocks       InvestmentType = "STOCKS"
	Gold         InvestmentType = "GOLD"
)

// Investment tracks an invested position and its last known value.
type Investment struct {
	ID             string         `json:"id"`
	Type           InvestmentType `json:"type"`
	Name           string         `json:"name"`
	InvestedAmount float64        `json:"investedAmount"`
	CurrentValue   float64        `json:"currentValue"`
	LastUpdated    time.Time      `json:"lastUpdated"`
}
