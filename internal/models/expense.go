package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of an expense's balance effect
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "Debit"
	TransactionTypeCredit TransactionType = "Credit"
	TransactionTypeNone   TransactionType = ""
)

// Sign returns the balance effect of the transaction type: -1 for debits,
// +1 for credits, 0 for anything else.
func (t TransactionType) Sign() int {
	switch t {
	case TransactionTypeDebit:
		return -1
	case TransactionTypeCredit:
		return 1
	default:
		return 0
	}
}

// Expense represents a single financial transaction owned by a user and tied
// to one bank account. Amount is a positive magnitude; the direction comes
// from TransactionType.
type Expense struct {
	Base
	UserID              uint            `gorm:"not null;index" json:"user_id"`
	BankAccountID       uint            `gorm:"not null;index" json:"bank_account_id"`
	Amount              decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date                time.Time       `gorm:"type:date;not null" json:"date"`
	Time                string          `gorm:"type:time" json:"time"`
	TransactionDateTime time.Time       `gorm:"not null;index" json:"transaction_date_time"`
	TransactionInfo     string          `gorm:"size:255" json:"transaction_info"`
	Notes               string          `gorm:"type:text" json:"notes"`
	Currency            string          `gorm:"size:10;not null;default:'INR'" json:"currency"`
	TransactionType     TransactionType `gorm:"size:10" json:"transaction_type"`

	BankAccount *BankAccount      `gorm:"foreignKey:BankAccountID" json:"bank_account,omitempty"`
	Tags        []Tag             `gorm:"many2many:expense_tags" json:"tags,omitempty"`
	LineItems   []ExpenseLineItem `gorm:"foreignKey:ExpenseID" json:"line_items,omitempty"`
}

// ExpenseLineItem is a named sub-component of an expense's total amount.
// Line items are exclusively owned by their expense: they are removed when
// the expense is deleted or when its item set is replaced.
type ExpenseLineItem struct {
	Base
	ExpenseID uint            `gorm:"not null;index" json:"expense_id"`
	ItemID    uint            `gorm:"not null" json:"item_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}
