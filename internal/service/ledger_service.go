package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartfin/smartfin/internal/calculator"
	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/smsparse"
	"github.com/smartfin/smartfin/internal/storage"
)

// LedgerService manages the personal income/expense ledger feeding the
// dashboard aggregates.
type LedgerService struct {
	store  storage.Store
	parser smsparse.Parser
}

// NewLedgerService creates a LedgerService. parser may be nil when SMS
// import is not configured; ImportSMS then fails cleanly.
func NewLedgerService(store storage.Store, parser smsparse.Parser) *LedgerService {
	return &LedgerService{store: store, parser: parser}
}

// EntryInput carries the user-editable fields of a personal ledger entry.
type EntryInput struct {
	Amount      float64
	Category    string
	SubCategory string
	Type        models.TransactionType
	Note        string
	Merchant    string
}

func validateEntry(in EntryInput) error {
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrCategoryRequired
	}
	return nil
}

// Create validates and prepends a new entry, newest first like splits.
func (s *LedgerService) Create(ctx context.Context, userID string, in EntryInput) (*models.Transaction, error) {
	if err := validateEntry(in); err != nil {
		return nil, err
	}

	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx := models.Transaction{
		ID:          uuid.NewString(),
		Amount:      in.Amount,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Type:        in.Type,
		Note:        in.Note,
		Date:        time.Now(),
		Merchant:    in.Merchant,
	}
	doc.Transactions = append([]models.Transaction{tx}, doc.Transactions...)

	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("ledger entry created", "transaction_id", tx.ID, "type", tx.Type, "amount", tx.Amount)
	return &tx, nil
}

// Update replaces the entry with the matching id, preserving its id and
// original date.
func (s *LedgerService) Update(ctx context.Context, userID, transactionID string, in EntryInput) (*models.Transaction, error) {
	if err := validateEntry(in); err != nil {
		return nil, err
	}

	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range doc.Transactions {
		if doc.Transactions[i].ID != transactionID {
			continue
		}
		prev := doc.Transactions[i]
		doc.Transactions[i] = models.Transaction{
			ID:          prev.ID,
			Amount:      in.Amount,
			Category:    in.Category,
			SubCategory: in.SubCategory,
			Type:        in.Type,
			Note:        in.Note,
			Date:        prev.Date,
			Merchant:    in.Merchant,
		}
		if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
			return nil, err
		}
		tx := doc.Transactions[i]
		slog.Info("ledger entry updated", "transaction_id", transactionID)
		return &tx, nil
	}
	return nil, ErrTransactionNotFound
}

// Delete removes the entry by id.
func (s *LedgerService) Delete(ctx context.Context, userID, transactionID string) error {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return err
	}

	transactions := doc.Transactions[:0]
	found := false
	for _, t := range doc.Transactions {
		if t.ID == transactionID {
			found = true
			continue
		}
		transactions = append(transactions, t)
	}
	if !found {
		return ErrTransactionNotFound
	}
	doc.Transactions = transactions

	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return err
	}
	slog.Info("ledger entry deleted", "transaction_id", transactionID)
	return nil
}

// List returns all personal entries, newest first.
func (s *LedgerService) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	return doc.Transactions, nil
}

// Summary returns the dashboard aggregates.
func (s *LedgerService) Summary(ctx context.Context, userID string) (calculator.Summary, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return calculator.Summary{}, err
	}
	return calculator.Summarize(doc.Transactions), nil
}

// ImportSMS parses free-form SMS text through the AI collaborator and, on
// success, records the extracted transaction. A parse failure creates
// nothing and is surfaced so the user can retry.
func (s *LedgerService) ImportSMS(ctx context.Context, userID, text string) (*models.Transaction, error) {
	if s.parser == nil {
		return nil, smsparse.ErrParseFailed
	}

	parsed, err := s.parser.Parse(ctx, text)
	if err != nil {
		slog.Warn("sms import failed", "error", err)
		return nil, err
	}

	txType := models.Expense
	if parsed.Type == "credit" {
		txType = models.Income
	}
	category := parsed.Category
	if category == "" {
		category = "Other"
	}

	return s.Create(ctx, userID, EntryInput{
		Amount:   parsed.Amount,
		Category: category,
		Type:     txType,
		Note:     "Imported from SMS",
		Merchant: parsed.Merchant,
	})
}
