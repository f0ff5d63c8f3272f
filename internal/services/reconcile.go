package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// The balance reconciliation engine keeps BankAccount.Balance consistent with
// the signed sum of the account's expenses: Debit subtracts, Credit adds,
// anything else contributes zero. It has no state of its own; it adjusts
// account rows already loaded in the current transaction.

// expenseEffect captures the balance-relevant fields of an expense before a
// mutation, so the old effect can be reversed after fields change.
type expenseEffect struct {
	amount        decimal.Decimal
	txnType       models.TransactionType
	bankAccountID uint
}

func effectOf(e *models.Expense) expenseEffect {
	return expenseEffect{
		amount:        e.Amount,
		txnType:       e.TransactionType,
		bankAccountID: e.BankAccountID,
	}
}

// signedAmount returns the amount with the sign of its transaction type.
func signedAmount(amount decimal.Decimal, txnType models.TransactionType) decimal.Decimal {
	switch txnType.Sign() {
	case 1:
		return amount
	case -1:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// applyEffect adds an expense's signed effect to the in-memory balance.
// A null balance is coerced to zero on the first write.
func applyEffect(account *models.BankAccount, amount decimal.Decimal, txnType models.TransactionType) {
	account.Balance = decimal.NewNullDecimal(account.BalanceOrZero().Add(signedAmount(amount, txnType)))
}

// reverseEffect undoes applyEffect: same magnitude, opposite sign.
func reverseEffect(account *models.BankAccount, amount decimal.Decimal, txnType models.TransactionType) {
	account.Balance = decimal.NewNullDecimal(account.BalanceOrZero().Sub(signedAmount(amount, txnType)))
}

func saveBalance(tx *gorm.DB, account *models.BankAccount) error {
	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// applyBalance applies an expense's effect to the account and persists the balance.
func applyBalance(tx *gorm.DB, account *models.BankAccount, amount decimal.Decimal, txnType models.TransactionType) error {
	applyEffect(account, amount, txnType)
	return saveBalance(tx, account)
}

// reverseBalance reverses an expense's effect on the account and persists the balance.
func reverseBalance(tx *gorm.DB, account *models.BankAccount, amount decimal.Decimal, txnType models.TransactionType) error {
	reverseEffect(account, amount, txnType)
	return saveBalance(tx, account)
}

// reconcileUpdate adjusts balances after an expense update. When the expense
// stayed on one account, the old effect is reversed and the new one applied on
// the same in-memory row before a single save. When it moved accounts, each
// account is adjusted and saved independently.
func reconcileUpdate(tx *gorm.DB, old expenseEffect, oldAccount *models.BankAccount, updated *models.Expense, newAccount *models.BankAccount) error {
	if old.bankAccountID == updated.BankAccountID {
		reverseEffect(newAccount, old.amount, old.txnType)
		applyEffect(newAccount, updated.Amount, updated.TransactionType)
		return saveBalance(tx, newAccount)
	}

	if err := reverseBalance(tx, oldAccount, old.amount, old.txnType); err != nil {
		return err
	}
	return applyBalance(tx, newAccount, updated.Amount, updated.TransactionType)
}
