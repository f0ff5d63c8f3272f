package testutil_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "bank_accounts", "tags", "items", "expenses", "expense_line_items", "expense_tags", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	account := testutil.CreateTestBankAccount(t, db, user.ID)
	if account.Balance.Valid {
		t.Error("expected fresh account to have a null balance")
	}

	funded := testutil.CreateTestBankAccountWithBalance(t, db, user.ID, decimal.NewFromInt(5000))
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(5000), funded.Balance.Decimal)

	tag := testutil.CreateTestTag(t, db, user.ID)
	if tag.ID == 0 {
		t.Fatal("tag should have a non-zero ID")
	}

	item := testutil.CreateTestItem(t, db, user.ID)
	if item.Name == "" {
		t.Error("item should have a name")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, account.ID, models.TransactionTypeDebit, decimal.NewFromInt(100))
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(100), expense.Amount)
	if expense.Currency != "INR" {
		t.Errorf("expected INR default, got %q", expense.Currency)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBankAccountNotFound, "custom message")
	testutil.AssertAppError(t, err, "BANK_ACCOUNT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
