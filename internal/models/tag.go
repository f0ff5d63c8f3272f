package models

// Tag is a user-scoped label attached to expenses. Names are stored exactly
// as first given (case-sensitive); uniqueness is per user.
type Tag struct {
	Base
	UserID uint   `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"user_id"`
	Name   string `gorm:"not null;uniqueIndex:idx_tags_user_name;size:50" json:"name"`

	Expenses []Expense `gorm:"many2many:expense_tags" json:"expenses,omitempty"`
}
