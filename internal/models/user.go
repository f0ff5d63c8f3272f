package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// SHA-256 hex digest of the user's current refresh token.
	RefreshTokenHash string `gorm:"size:64" json:"-"`

	BankAccounts []BankAccount `gorm:"foreignKey:UserID" json:"bank_accounts,omitempty"`
	Expenses     []Expense     `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Tags         []Tag         `gorm:"foreignKey:UserID" json:"tags,omitempty"`
	Items        []Item        `gorm:"foreignKey:UserID" json:"items,omitempty"`
}
