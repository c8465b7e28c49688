package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "smartfin-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateUser and GetUserByEmail", func(t *testing.T) {
		user := models.NewUser("alice@example.com", "Alice", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got.ID != user.ID || got.Name != "Alice" || got.PasswordHash != "hash" {
			t.Errorf("user = %+v, want %+v", got, user)
		}
	})

	t.Run("GetUserByID returns ErrUserNotFound for unknown id", func(t *testing.T) {
		if _, err := store.GetUserByID(ctx, "missing"); !errors.Is(err, storage.ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("UpdateUser changes profile fields", func(t *testing.T) {
		user := models.NewUser("bob@example.com", "Bob", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		user.Name = "Robert"
		user.Phone = "555-0100"
		if err := store.UpdateUser(ctx, user); err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}

		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got.Name != "Robert" || got.Phone != "555-0100" {
			t.Errorf("user = %+v after update", got)
		}
	})

	t.Run("UpdateUser on unknown user fails", func(t *testing.T) {
		ghost := models.NewUser("ghost@example.com", "Ghost", "hash")
		if err := store.UpdateUser(ctx, ghost); !errors.Is(err, storage.ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("LoadDocument defaults for new user", func(t *testing.T) {
		user := models.NewUser("carol@example.com", "Carol", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		doc, err := store.LoadDocument(ctx, user.ID)
		if err != nil {
			t.Fatalf("LoadDocument failed: %v", err)
		}
		if doc.Branding.Name != models.DefaultBrandName {
			t.Errorf("branding = %+v, want default", doc.Branding)
		}
		if len(doc.Groups) != 0 || len(doc.Transactions) != 0 {
			t.Errorf("new user document not empty: %+v", doc)
		}
	})

	t.Run("SaveDocument and LoadDocument round-trip", func(t *testing.T) {
		user := models.NewUser("dave@example.com", "Dave", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		doc := models.DefaultDocument()
		doc.Goals = []models.Goal{{ID: "g1", Name: "Vacation", TargetAmount: 1000}}
		doc.Groups = []models.Group{{ID: "grp1", Name: "Trip", InviteCode: "SMART-AB12"}}
		if err := store.SaveDocument(ctx, user.ID, doc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		got, err := store.LoadDocument(ctx, user.ID)
		if err != nil {
			t.Fatalf("LoadDocument failed: %v", err)
		}
		if len(got.Goals) != 1 || got.Goals[0].Name != "Vacation" {
			t.Errorf("goals = %+v", got.Goals)
		}
		if len(got.Groups) != 1 || got.Groups[0].InviteCode != "SMART-AB12" {
			t.Errorf("groups = %+v", got.Groups)
		}
	})

	t.Run("SaveDocument replaces wholesale", func(t *testing.T) {
		user := models.NewUser("erin@example.com", "Erin", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		first := models.DefaultDocument()
		first.Goals = []models.Goal{{ID: "g1", Name: "Old goal", TargetAmount: 100}}
		if err := store.SaveDocument(ctx, user.ID, first); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		second := models.DefaultDocument()
		second.Budgets = []models.Budget{{ID: "b1", Category: "Food", Limit: 500}}
		if err := store.SaveDocument(ctx, user.ID, second); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		got, err := store.LoadDocument(ctx, user.ID)
		if err != nil {
			t.Fatalf("LoadDocument failed: %v", err)
		}
		if len(got.Goals) != 0 {
			t.Errorf("goals = %+v, want replaced away", got.Goals)
		}
		if len(got.Budgets) != 1 {
			t.Errorf("budgets = %+v", got.Budgets)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		first := models.NewUser("dup@example.com", "First", "hash")
		if err := store.CreateUser(ctx, first); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		second := models.NewUser("dup@example.com", "Second", "hash")
		if err := store.CreateUser(ctx, second); err == nil {
			t.Error("expected duplicate email to fail")
		}
	})
}
