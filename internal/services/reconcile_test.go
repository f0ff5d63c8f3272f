package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(100)

	if got := signedAmount(amount, models.TransactionTypeDebit); !got.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expected -100 for debit, got %s", got)
	}
	if got := signedAmount(amount, models.TransactionTypeCredit); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100 for credit, got %s", got)
	}
	if got := signedAmount(amount, models.TransactionTypeNone); !got.IsZero() {
		t.Errorf("expected 0 for empty type, got %s", got)
	}
}

func TestApplyAndReverseEffect(t *testing.T) {
	t.Run("null_balance_treated_as_zero", func(t *testing.T) {
		account := &models.BankAccount{}
		applyEffect(account, decimal.NewFromInt(500), models.TransactionTypeDebit)

		if !account.Balance.Valid {
			t.Fatal("expected balance to be initialized")
		}
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(-500), account.Balance.Decimal)
	})

	t.Run("reverse_undoes_apply", func(t *testing.T) {
		account := &models.BankAccount{Balance: decimal.NewNullDecimal(decimal.NewFromInt(1000))}
		amount := decimal.RequireFromString("123.45")

		applyEffect(account, amount, models.TransactionTypeCredit)
		reverseEffect(account, amount, models.TransactionTypeCredit)

		testutil.AssertDecimalEqual(t, decimal.NewFromInt(1000), account.Balance.Decimal)
	})

	t.Run("none_type_has_no_effect", func(t *testing.T) {
		account := &models.BankAccount{Balance: decimal.NewNullDecimal(decimal.NewFromInt(42))}
		applyEffect(account, decimal.NewFromInt(999), models.TransactionTypeNone)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(42), account.Balance.Decimal)
	})
}

func TestReconcileUpdate(t *testing.T) {
	t.Run("same_account_single_save", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestBankAccountWithBalance(t, db, user.ID, decimal.NewFromInt(-100))
		expense := testutil.CreateTestExpense(t, db, user.ID, account.ID, models.TransactionTypeDebit, decimal.NewFromInt(100))

		old := effectOf(expense)
		expense.Amount = decimal.NewFromInt(150)

		err := reconcileUpdate(db, old, nil, expense, account)
		testutil.AssertNoError(t, err)

		reloaded := testutil.ReloadBankAccount(t, db, account.ID)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(-150), reloaded.Balance.Decimal)
	})

	t.Run("cross_account_adjusts_both", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		oldAccount := testutil.CreateTestBankAccountWithBalance(t, db, user.ID, decimal.NewFromInt(-250))
		newAccount := testutil.CreateTestBankAccount(t, db, user.ID)
		expense := testutil.CreateTestExpense(t, db, user.ID, oldAccount.ID, models.TransactionTypeDebit, decimal.NewFromInt(250))

		old := effectOf(expense)
		expense.BankAccountID = newAccount.ID

		err := reconcileUpdate(db, old, oldAccount, expense, newAccount)
		testutil.AssertNoError(t, err)

		reloadedOld := testutil.ReloadBankAccount(t, db, oldAccount.ID)
		testutil.AssertDecimalEqual(t, decimal.Zero, reloadedOld.Balance.Decimal)
		reloadedNew := testutil.ReloadBankAccount(t, db, newAccount.ID)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(-250), reloadedNew.Balance.Decimal)
	})

	t.Run("type_flip_same_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestBankAccountWithBalance(t, db, user.ID, decimal.NewFromInt(-500))
		expense := testutil.CreateTestExpense(t, db, user.ID, account.ID, models.TransactionTypeDebit, decimal.NewFromInt(500))

		old := effectOf(expense)
		expense.Amount = decimal.NewFromInt(600)
		expense.TransactionType = models.TransactionTypeCredit

		err := reconcileUpdate(db, old, nil, expense, account)
		testutil.AssertNoError(t, err)

		reloaded := testutil.ReloadBankAccount(t, db, account.ID)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(600), reloaded.Balance.Decimal)
	})
}
