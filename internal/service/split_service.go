package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/storage"
)

// SplitService manages shared expenses within a group.
type SplitService struct {
	store storage.Store
}

// NewSplitService creates a new SplitService with the given storage backend.
func NewSplitService(store storage.Store) *SplitService {
	return &SplitService{store: store}
}

// SplitInput carries the user-editable fields of a shared expense.
type SplitInput struct {
	Description     string
	Amount          float64
	PaidByID        string
	SplitBetweenIDs []string
	Category        string
}

// validateSplit enforces the creation invariants: non-empty description,
// positive amount, non-empty duplicate-free split set, and a payer who is a
// current member. Split participants must also be current members at
// creation time; they may dangle later if a member is removed.
func validateSplit(group *models.Group, in SplitInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(in.SplitBetweenIDs) == 0 {
		return ErrEmptySplit
	}
	seen := make(map[string]bool, len(in.SplitBetweenIDs))
	for _, id := range in.SplitBetweenIDs {
		if seen[id] {
			return ErrDuplicateSplit
		}
		seen[id] = true
		if group.MemberByID(id) == nil {
			return ErrSplitNotMember
		}
	}
	if group.MemberByID(in.PaidByID) == nil {
		return ErrPayerNotMember
	}
	return nil
}

// Create validates and prepends a new shared expense to the group.
func (s *SplitService) Create(ctx context.Context, userID, groupID string, in SplitInput) (*models.Group, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	group := doc.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}
	if err := validateSplit(group, in); err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = "Other"
	}

	tx := models.GroupTransaction{
		ID:              uuid.NewString(),
		GroupID:         group.ID,
		Description:     in.Description,
		Amount:          in.Amount,
		PaidByID:        in.PaidByID,
		SplitBetweenIDs: append([]string(nil), in.SplitBetweenIDs...),
		Date:            time.Now(),
		Category:        category,
	}

	updated := group.Clone()
	updated.Transactions = append([]models.GroupTransaction{tx}, updated.Transactions...)

	doc.ReplaceGroup(updated)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("split created",
		"group_id", groupID,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"participants", len(tx.SplitBetweenIDs),
	)
	return updated, nil
}

// Update replaces the transaction with the matching id in place. The id and
// the original date are preserved; everything else comes from the input,
// validated the same way as on create.
func (s *SplitService) Update(ctx context.Context, userID, groupID, transactionID string, in SplitInput) (*models.Group, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	group := doc.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}
	if err := validateSplit(group, in); err != nil {
		return nil, err
	}

	updated := group.Clone()
	found := false
	for i := range updated.Transactions {
		if updated.Transactions[i].ID != transactionID {
			continue
		}
		prev := updated.Transactions[i]
		category := in.Category
		if category == "" {
			category = prev.Category
		}
		updated.Transactions[i] = models.GroupTransaction{
			ID:              prev.ID,
			GroupID:         prev.GroupID,
			Description:     in.Description,
			Amount:          in.Amount,
			PaidByID:        in.PaidByID,
			SplitBetweenIDs: append([]string(nil), in.SplitBetweenIDs...),
			Date:            prev.Date,
			Category:        category,
		}
		found = true
		break
	}
	if !found {
		return nil, ErrTransactionNotFound
	}

	doc.ReplaceGroup(updated)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("split updated", "group_id", groupID, "transaction_id", transactionID)
	return updated, nil
}

// Delete removes the transaction by id. Destructive: callers must obtain
// explicit user confirmation before invoking.
func (s *SplitService) Delete(ctx context.Context, userID, groupID, transactionID string) (*models.Group, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	group := doc.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}

	updated := group.Clone()
	transactions := updated.Transactions[:0]
	found := false
	for _, t := range updated.Transactions {
		if t.ID == transactionID {
			found = true
			continue
		}
		transactions = append(transactions, t)
	}
	if !found {
		return nil, ErrTransactionNotFound
	}
	updated.Transactions = transactions

	doc.ReplaceGroup(updated)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return nil, err
	}

	slog.Info("split deleted", "group_id", groupID, "transaction_id", transactionID)
	return updated, nil
}
