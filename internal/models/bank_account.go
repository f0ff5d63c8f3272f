package models

import "github.com/shopspring/decimal"

// BankAccount represents a user's bank account with a cached balance that is
// kept consistent with the signed sum of its expenses.
//
// Balance is nullable: null means the balance has never been written and is
// treated as zero for arithmetic. It stays null until the first balance write.
type BankAccount struct {
	Base
	UserID        uint                `gorm:"not null" json:"user_id"`
	Name          string              `gorm:"not null;size:100" json:"name"`
	Balance       decimal.NullDecimal `gorm:"type:decimal(12,3)" json:"balance"`
	IFSCCode      string              `gorm:"size:20" json:"ifsc_code,omitempty"`
	AccountNumber string              `gorm:"size:30" json:"account_number,omitempty"`

	Expenses []Expense `gorm:"foreignKey:BankAccountID" json:"expenses,omitempty"`
}

// BalanceOrZero returns the stored balance, treating a null balance as zero.
func (a *BankAccount) BalanceOrZero() decimal.Decimal {
	if !a.Balance.Valid {
		return decimal.Zero
	}
	return a.Balance.Decimal
}
