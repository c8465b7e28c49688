package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/storage/memory"
)

func setupFinanceTest(t *testing.T) (*FinanceService, string) {
	t.Helper()

	store := memory.New()
	user := models.NewUser("alice@example.com", "Alice", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return NewFinanceService(store), user.ID
}

func TestEMILifecycle(t *testing.T) {
	finance, userID := setupFinanceTest(t)
	ctx := context.Background()

	emi, err := finance.AddEMI(ctx, userID, models.EMI{
		LoanName:     "Home Loan",
		Amount:       1500.0,
		TenureMonths: 3,
		PaidMonths:   2,
	})
	if err != nil {
		t.Fatalf("AddEMI failed: %v", err)
	}
	if emi.ID == "" {
		t.Error("emi has no id")
	}

	// One payment reaches the tenure; a second must clamp there.
	for i := 0; i < 2; i++ {
		emi, err = finance.MarkEMIPaid(ctx, userID, emi.ID)
		if err != nil {
			t.Fatalf("MarkEMIPaid failed: %v", err)
		}
	}
	if emi.PaidMonths != 3 {
		t.Errorf("PaidMonths = %d, want clamped at 3", emi.PaidMonths)
	}
	if math.Abs(emi.Progress()-100.0) > 0.01 {
		t.Errorf("Progress = %v, want 100", emi.Progress())
	}
	if math.Abs(emi.Remaining()) > 0.01 {
		t.Errorf("Remaining = %v, want 0", emi.Remaining())
	}

	if err := finance.DeleteEMI(ctx, userID, emi.ID); err != nil {
		t.Fatalf("DeleteEMI failed: %v", err)
	}
	if err := finance.DeleteEMI(ctx, userID, emi.ID); !errors.Is(err, ErrEMINotFound) {
		t.Errorf("err = %v, want ErrEMINotFound", err)
	}
}

func TestAddEMIClampsPaidMonths(t *testing.T) {
	finance, userID := setupFinanceTest(t)

	emi, err := finance.AddEMI(context.Background(), userID, models.EMI{
		LoanName:     "Car Loan",
		Amount:       800.0,
		TenureMonths: 12,
		PaidMonths:   40,
	})
	if err != nil {
		t.Fatalf("AddEMI failed: %v", err)
	}
	if emi.PaidMonths != 12 {
		t.Errorf("PaidMonths = %d, want 12", emi.PaidMonths)
	}
}

func TestAddBudgetValidation(t *testing.T) {
	finance, userID := setupFinanceTest(t)
	ctx := context.Background()

	if _, err := finance.AddBudget(ctx, userID, models.Budget{Category: "", Limit: 100}); !errors.Is(err, ErrCategoryRequired) {
		t.Errorf("err = %v, want ErrCategoryRequired", err)
	}
	if _, err := finance.AddBudget(ctx, userID, models.Budget{Category: "Food", Limit: 0}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}

	budget, err := finance.AddBudget(ctx, userID, models.Budget{Category: "Food", Limit: 500})
	if err != nil {
		t.Fatalf("AddBudget failed: %v", err)
	}
	if budget.ID == "" {
		t.Error("budget has no id")
	}
}

func TestGoalContributions(t *testing.T) {
	finance, userID := setupFinanceTest(t)
	ctx := context.Background()

	goal, err := finance.AddGoal(ctx, userID, models.Goal{Name: "Vacation", TargetAmount: 1000})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	goal, err = finance.AddToGoal(ctx, userID, goal.ID, 400)
	if err != nil {
		t.Fatalf("AddToGoal failed: %v", err)
	}
	if math.Abs(goal.CurrentAmount-400) > 0.01 {
		t.Errorf("CurrentAmount = %v, want 400", goal.CurrentAmount)
	}
	if math.Abs(goal.Progress()-40.0) > 0.01 {
		t.Errorf("Progress = %v, want 40", goal.Progress())
	}

	// Overshooting the target caps progress at 100.
	goal, err = finance.AddToGoal(ctx, userID, goal.ID, 5000)
	if err != nil {
		t.Fatalf("AddToGoal failed: %v", err)
	}
	if math.Abs(goal.Progress()-100.0) > 0.01 {
		t.Errorf("Progress = %v, want capped at 100", goal.Progress())
	}

	if _, err := finance.AddToGoal(ctx, userID, "missing", 10); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
	if _, err := finance.AddToGoal(ctx, userID, goal.ID, -5); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestAddInvestment(t *testing.T) {
	finance, userID := setupFinanceTest(t)

	inv, err := finance.AddInvestment(context.Background(), userID, models.Investment{
		Type:           models.MutualFund,
		Name:           "Index Fund",
		InvestedAmount: 10000,
		CurrentValue:   10500,
	})
	if err != nil {
		t.Fatalf("AddInvestment failed: %v", err)
	}
	if inv.ID == "" || inv.LastUpdated.IsZero() {
		t.Errorf("investment missing id or timestamp: %+v", inv)
	}
}

func TestUpdateBranding(t *testing.T) {
	finance, userID := setupFinanceTest(t)
	ctx := context.Background()

	doc, err := finance.Document(ctx, userID)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if doc.Branding.Name != models.DefaultBrandName {
		t.Errorf("default brand = %q, want %q", doc.Branding.Name, models.DefaultBrandName)
	}

	if err := finance.UpdateBranding(ctx, userID, models.Branding{Name: "MyMoney"}); err != nil {
		t.Fatalf("UpdateBranding failed: %v", err)
	}
	doc, err = finance.Document(ctx, userID)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if doc.Branding.Name != "MyMoney" {
		t.Errorf("brand = %q, want MyMoney", doc.Branding.Name)
	}

	if err := finance.UpdateBranding(ctx, userID, models.Branding{Name: " "}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	finance, userID := setupFinanceTest(t)
	ctx := context.Background()

	if _, err := finance.AddGoal(ctx, userID, models.Goal{Name: "Vacation", TargetAmount: 1000}); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	if err := finance.UpdateBranding(ctx, userID, models.Branding{Name: "MyMoney"}); err != nil {
		t.Fatalf("UpdateBranding failed: %v", err)
	}

	payload, err := finance.Export(ctx, userID)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Restore into a fresh user's account.
	other, otherID := setupFinanceTest(t)
	if err := other.Import(ctx, otherID, payload); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	doc, err := other.Document(ctx, otherID)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if len(doc.Goals) != 1 || doc.Goals[0].Name != "Vacation" {
		t.Errorf("restored goals = %+v", doc.Goals)
	}
	if doc.Branding.Name != "MyMoney" {
		t.Errorf("restored brand = %q, want MyMoney", doc.Branding.Name)
	}
}
