package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"aurum/internal/storage"
	"aurum/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := NewUserService(ledger)

		user, err := svc.CreateUser("asha", "secret-pass")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected generated user ID")
		}
		if user.Username != "asha" {
			t.Errorf("expected username asha, got %s", user.Username)
		}
		// Credential placeholder is stored hashed, never verbatim.
		if user.Password == "secret-pass" {
			t.Error("expected hashed password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-pass")); err != nil {
			t.Errorf("stored hash does not match password: %v", err)
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := NewUserService(ledger)

		_, err := svc.CreateUser("asha", "secret-pass")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("asha", "other-pass")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := NewUserService(ledger)
		user := testutil.CreateTestUser(t, ledger)

		got, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if got.Username != user.Username {
			t.Errorf("expected %s, got %s", user.Username, got.Username)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		svc := NewUserService(storage.NewMemoryLedger())

		_, err := svc.GetUserByID("missing")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestEnsureSeedUser(t *testing.T) {
	t.Run("creates_demo_user", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := NewUserService(ledger)

		user, err := svc.EnsureSeedUser("Parag")
		testutil.AssertNoError(t, err)

		if user.ID != SeedUserID {
			t.Errorf("expected fixed seed ID, got %s", user.ID)
		}
		if user.Username != "Parag" {
			t.Errorf("expected username Parag, got %s", user.Username)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := NewUserService(ledger)

		first, err := svc.EnsureSeedUser("Parag")
		testutil.AssertNoError(t, err)

		second, err := svc.EnsureSeedUser("Parag")
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Error("expected the same seed user on repeat calls")
		}
	})
}
