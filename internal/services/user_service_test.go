package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("creates active user with hashed password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)

		user, err := service.CreateUser("New@Example.com", "password123", "John", "Doe")
		testutil.AssertNoError(t, err)

		if user.Email != "new@example.com" {
			t.Errorf("expected lower-cased email, got %q", user.Email)
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
		if user.Password == "password123" {
			t.Error("expected password to be hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
			t.Errorf("stored hash does not match password: %v", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)

		_, err := service.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = service.CreateUser("DUP@example.com", "password456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	if !service.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if service.VerifyPassword(user, "wrong") {
		t.Error("expected wrong password to fail")
	}
}

func TestAttemptLogin(t *testing.T) {
	t.Run("succeeds and records last login", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)
		created := testutil.CreateTestUserWithEmail(t, db, "login@example.com")

		user, err := service.AttemptLogin("login@example.com", "password123")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}

		var reloaded models.User
		if err := db.First(&reloaded, created.ID).Error; err != nil {
			t.Fatalf("failed to reload user: %v", err)
		}
		if reloaded.LastLoginAt == nil {
			t.Error("expected last_login_at to be recorded")
		}
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)

		_, err := service.AttemptLogin("nobody@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)
		testutil.CreateTestUserWithEmail(t, db, "login@example.com")

		_, err := service.AttemptLogin("login@example.com", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("rejects disabled account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)
		user := testutil.CreateTestUserWithEmail(t, db, "disabled@example.com")
		if err := db.Model(user).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to disable user: %v", err)
		}

		_, err := service.AttemptLogin("disabled@example.com", "password123")
		testutil.AssertAppError(t, err, "ACCOUNT_DISABLED")
	})

	t.Run("rejects email shared by several accounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)

		// simulate legacy duplicate rows by lifting the unique index
		if err := db.Exec("DROP INDEX idx_users_email").Error; err != nil {
			t.Fatalf("failed to drop email index: %v", err)
		}
		testutil.CreateTestUserWithEmail(t, db, "shared@example.com")
		testutil.CreateTestUserWithEmail(t, db, "shared@example.com")

		_, err := service.AttemptLogin("shared@example.com", "password123")
		testutil.AssertAppError(t, err, "AMBIGUOUS_EMAIL")
	})
}

func TestStoreAndGetRefreshTokenHash(t *testing.T) {
	t.Run("round trips the hash", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		hash := "3f2c6a9e8b1d4075a6c2e9f0b3d8417c5e6a0f9d2b8c1e4735a9d0f6c2b8e417"
		testutil.AssertNoError(t, service.StoreRefreshTokenHash(user.ID, hash))

		got, err := service.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if got != hash {
			t.Errorf("expected stored hash back, got %q", got)
		}
	})

	t.Run("replaces the previous hash", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, service.StoreRefreshTokenHash(user.ID, "first"))
		testutil.AssertNoError(t, service.StoreRefreshTokenHash(user.ID, "second"))

		got, err := service.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if got != "second" {
			t.Errorf("expected latest hash, got %q", got)
		}
	})

	t.Run("returns not found for unknown user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewUserService(db)

		err := service.StoreRefreshTokenHash(9999, "hash")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")

		_, err = service.GetRefreshTokenHash(9999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
