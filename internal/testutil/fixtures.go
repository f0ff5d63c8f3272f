package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"paisa/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBankAccount creates a bank account with a null balance.
func CreateTestBankAccount(t *testing.T, db *gorm.DB, userID uint) *models.BankAccount {
	t.Helper()

	account := &models.BankAccount{
		UserID: userID,
		Name:   fmt.Sprintf("Test Account %d", nextID()),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test bank account: %v", err)
	}
	return account
}

// CreateTestBankAccountWithBalance creates a bank account with the given balance.
func CreateTestBankAccountWithBalance(t *testing.T, db *gorm.DB, userID uint, balance decimal.Decimal) *models.BankAccount {
	t.Helper()

	account := &models.BankAccount{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Balance: decimal.NewNullDecimal(balance),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test bank account: %v", err)
	}
	return account
}

// CreateTestTag creates a tag with a unique name.
func CreateTestTag(t *testing.T, db *gorm.DB, userID uint) *models.Tag {
	t.Helper()
	return CreateTestTagWithName(t, db, userID, fmt.Sprintf("Test Tag %d", nextID()))
}

// CreateTestTagWithName creates a tag with the given name.
func CreateTestTagWithName(t *testing.T, db *gorm.DB, userID uint, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{UserID: userID, Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create test tag: %v", err)
	}
	return tag
}

// CreateTestItem creates an item with a unique lower-case name.
func CreateTestItem(t *testing.T, db *gorm.DB, userID uint) *models.Item {
	t.Helper()

	item := &models.Item{
		UserID: userID,
		Name:   fmt.Sprintf("test item %d", nextID()),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateTestExpense creates an expense of the given type and amount.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, accountID uint, txType models.TransactionType, amount decimal.Decimal) *models.Expense {
	t.Helper()

	now := time.Now()
	expense := &models.Expense{
		UserID:              userID,
		BankAccountID:       accountID,
		Amount:              amount,
		Date:                time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TransactionDateTime: now,
		Currency:            "INR",
		TransactionType:     txType,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// ReloadBankAccount fetches the current state of a bank account row.
func ReloadBankAccount(t *testing.T, db *gorm.DB, accountID uint) *models.BankAccount {
	t.Helper()

	var account models.BankAccount
	if err := db.First(&account, accountID).Error; err != nil {
		t.Fatalf("failed to reload bank account: %v", err)
	}
	return &account
}
