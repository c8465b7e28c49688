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

// FinanceService manages the simpler per-user entities: EMIs, budgets,
// goals, investments, and branding, plus whole-document export/import.
type FinanceService struct {
	store storage.Store
}

// NewFinanceService creates a new FinanceService with the given storage backend.
func NewFinanceService(store storage.Store) *FinanceService {
	return &FinanceService{store: store}
}

func (s *FinanceService) mutate(ctx context.Context, userID string, fn func(doc *models.Document) error) error {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.store.SaveDocument(ctx, userID, doc)
}

// Document returns the user's full document.
func (s *FinanceService) Document(ctx context.Context, userID string) (*models.Document, error) {
	return s.store.LoadDocument(ctx, userID)
}

// AddEMI records a new loan installment tracker.
func (s *FinanceService) AddEMI(ctx context.Context, userID string, emi models.EMI) (*models.EMI, error) {
	if strings.TrimSpace(emi.LoanName) == "" {
		return nil, ErrEmptyName
	}
	if emi.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	emi.ID = uuid.NewString()
	if emi.PaidMonths > emi.TenureMonths {
		emi.PaidMonths = emi.TenureMonths
	}
	err := s.mutate(ctx, userID, func(doc *models.Document) error {
		doc.EMIs = append(doc.EMIs, emi)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("emi added", "emi_id", emi.ID, "loan", emi.LoanName)
	return &emi, nil
}

// MarkEMIPaid advances an EMI by one month, clamped at the tenure.
func (s *FinanceService) MarkEMIPaid(ctx context.Context, userID, emiID string) (*models.EMI, error) {
	var out *models.EMI
	err := s.mutate(ctx, userID, func(doc *models.Document) error {
		for i := range doc.EMIs {
			if doc.EMIs[i].ID != emiID {
				continue
			}
			if doc.EMIs[i].PaidMonths < doc.EMIs[i].TenureMonths {
				doc.EMIs[i].PaidMonths++
			}
			emi := doc.EMIs[i]
			out = &emi
			return nil
		}
		return ErrEMINotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEMI removes an EMI tracker.
func (s *FinanceService) DeleteEMI(ctx context.Context, userID, emiID string) error {
	return s.mutate(ctx, userID, func(doc *models.Document) error {
		for i := range doc.EMIs {
			if doc.EMIs[i].ID == emiID {
				doc.EMIs = append(doc.EMIs[:i], doc.EMIs[i+1:]...)
				return nil
			}
		}
		return ErrEMINotFound
	})
}

// AddBudget records a per-category spending limit.
func (s *FinanceService) AddBudget(ctx context.Context, userID string, budget models.Budget) (*models.Budget, error) {
	if strings.TrimSpace(budget.Category) == "" {
		return nil, ErrCategoryRequired
	}
	if budget.Limit <= 0 {
		return nil, ErrInvalidAmount
	}
	budget.ID = uuid.NewString()
	err := s.mutate(ctx, userID, func(doc *models.Document) error {
		doc.Budgets = append(doc.Budgets, budget)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// AddGoal records a savings target.
func (s *FinanceService) AddGoal(ctx context.Context, userID string, goal models.Goal) (*models.Goal, error) {
	if strings.TrimSpace(goal.Name) == "" {
		return nil, ErrEmptyName
	}
	if goal.TargetAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	goal.ID = uuid.NewString()
	err := s.mutate(ctx, userID, func(doc *models.Document) error {
		doc.Goals = append(doc.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// AddToGoal adds a contribution toward a goal.
func (s *FinanceService) AddToGoal(ctx context.Context, userID, goalID string, amount float64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var out *models.Goal
	err := s.mutate(ctx, userID, func(doc *models.Document) error {
		for i := range doc.Goals {
			if doc.Goals[i].ID != goalID {
				continue
			}
			doc.Goals[i].CurrentAmount += amount
			goal := doc.Goals[i]
			out = &goal
			return nil
		}
		return ErrGoalNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddInvestment records an invested position.
func (s *FinanceService) AddInvestment(ctx context.Context, userID string, inv models.Investment) (*models.Investment, error) {
	if strings.TrimSpace(inv.Name) == "" {
		return nil, ErrEmptyName
	}
	if inv.InvestedAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	inv.ID = uuid.NewString()
	inv.LastUpdated = time.Now()
	err := s.mutate(ctx, userID, func(doc *models.Document) error {
		doc.Investments = append(doc.Investments, inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateBranding replaces the product branding shown in the shell.
func (s *FinanceService) UpdateBranding(ctx context.Context, userID string, branding models.Branding) error {
	if strings.TrimSpace(branding.Name) == "" {
		return ErrEmptyName
	}
	return s.mutate(ctx, userID, func(doc *models.Document) error {
		doc.Branding = branding
		return nil
	})
}

// Export serializes the user's full document for backup.
func (s *FinanceService) Export(ctx context.Context, userID string) ([]byte, error) {
	doc, err := s.store.LoadDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	return doc.Encode()
}

// Import replaces the user's document with a previously exported backup.
// Decoding is field-tolerant, so a backup with one corrupt collection still
// restores the others.
func (s *FinanceService) Import(ctx context.Context, userID string, payload []byte) error {
	doc := models.DecodeDocument(payload)
	if err := s.store.SaveDocument(ctx, userID, doc); err != nil {
		return err
	}
	slog.Info("document imported", "user_id", userID)
	return nil
}
