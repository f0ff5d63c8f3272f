package services

import (
	"time"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
	"paisa/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// BankAccountUpdateFields holds optional fields for a bank account update.
// Nil pointers leave the corresponding column untouched.
type BankAccountUpdateFields struct {
	Name          *string
	Balance       *decimal.Decimal
	IFSCCode      *string
	AccountNumber *string
}

// BankAccountServicer defines the contract for bank-account business logic.
type BankAccountServicer interface {
	CreateBankAccount(userID uint, name, ifscCode, accountNumber string, balance *decimal.Decimal) (*models.BankAccount, error)
	GetUserBankAccounts(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BankAccount], error)
	GetBankAccountByID(userID, accountID uint) (*models.BankAccount, error)
	UpdateBankAccount(userID, accountID uint, fields BankAccountUpdateFields) (*models.BankAccount, error)
	DeleteBankAccount(userID, accountID uint) error
}

// TagServicer defines the contract for tag business logic.
type TagServicer interface {
	CreateTag(userID uint, name string) (*models.Tag, error)
	GetUserTags(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Tag], error)
	GetTagByID(userID, tagID uint) (*models.Tag, error)
	UpdateTag(userID, tagID uint, name string) (*models.Tag, error)
	DeleteTag(userID, tagID uint) error
}

// ItemServicer defines the contract for item business logic.
type ItemServicer interface {
	CreateItem(userID uint, name string) (*models.Item, error)
	GetUserItems(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Item], error)
	GetItemByID(userID, itemID uint) (*models.Item, error)
	UpdateItem(userID, itemID uint, name string) (*models.Item, error)
	DeleteItem(userID, itemID uint) error
}

// LineItemInput is an (item name, amount) pair used to build expense line items.
type LineItemInput struct {
	Name   string
	Amount decimal.Decimal
}

// ExpenseCreateInput holds the fields for creating an expense.
type ExpenseCreateInput struct {
	BankAccountID       uint
	Amount              decimal.Decimal
	Date                time.Time
	Time                string
	TransactionDateTime time.Time
	TransactionInfo     string
	Notes               string
	Currency            string
	TransactionType     models.TransactionType
	Tags                []string
	Items               []LineItemInput
}

// ExpenseUpdateFields holds optional fields for an expense update. Nil
// pointers leave the corresponding value untouched. A non-nil Tags pointer
// replaces the full tag set (an empty slice clears it); the same applies to
// Items and the expense's line items.
type ExpenseUpdateFields struct {
	BankAccountID       *uint
	Amount              *decimal.Decimal
	Date                *time.Time
	Time                *string
	TransactionDateTime *time.Time
	TransactionInfo     *string
	Notes               *string
	Currency            *string
	TransactionType     *models.TransactionType
	Tags                *[]string
	Items               *[]LineItemInput
}

// BulkUpdatePayload identifies one expense in a bulk update and the fields to change.
type BulkUpdatePayload struct {
	ID     uint
	Fields ExpenseUpdateFields
}

// ExpenseFilter holds optional filter parameters for the combined expense filter.
// Date bounds must be given together.
type ExpenseFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	TagIDs        []uint
	BankAccountID *uint
}

// ExpenseServicer defines the contract for expense business logic: the
// mutation paths that keep bank-account balances reconciled, plus the
// caller-scoped query layer.
type ExpenseServicer interface {
	CreateExpense(userID uint, input ExpenseCreateInput) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	BulkCreateExpenses(userID uint, inputs []ExpenseCreateInput) ([]models.Expense, error)
	BulkUpdateExpenses(userID uint, payloads []BulkUpdatePayload) ([]models.Expense, error)
	FilterByMonth(userID uint, month, year int) ([]models.Expense, error)
	FilterByTags(userID uint, tagIDs []uint) ([]models.Expense, error)
	FilterExpenses(userID uint, filter ExpenseFilter) ([]models.Expense, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
