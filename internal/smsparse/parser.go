// Package smsparse extracts structured transaction guesses from bank and
// payment SMS text via an external model. The caller treats any failure as
// "no transaction": a failed parse must never fabricate a ledger entry.
package smsparse

import (
	"context"
	"errors"
)

// ErrParseFailed signals that the text could not be turned into a
// transaction guess. The user may retry with the same or corrected text.
var ErrParseFailed = errors.New("could not extract a transaction from the text")

// ParsedSMS is the structured guess extracted from free-form SMS text.
type ParsedSMS struct {
	// Type is "debit" or "credit".
	Type string `json:"type"`

	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant"`
	Date     string  `json:"date"`
	Account  string  `json:"account,omitempty"`

	// Category is the best-matching finance category (Food, Travel,
	// Shopping, Bill, ...).
	Category string `json:"category"`
}

// Parser turns free-form SMS text into a structured transaction guess.
type Parser interface {
	Parse(ctx context.Context, text string) (*ParsedSMS, error)
}
