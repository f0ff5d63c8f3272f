package models

// Item is a user-scoped catalog entry referenced by expense line items.
// Names are always stored lower-cased; uniqueness is per user.
type Item struct {
	Base
	UserID uint   `gorm:"not null;uniqueIndex:idx_items_user_name" json:"user_id"`
	Name   string `gorm:"not null;uniqueIndex:idx_items_user_name;size:100" json:"name"`
}
