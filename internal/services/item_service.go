package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
)

type itemService struct {
	db *gorm.DB
}

// NewItemService creates a new ItemServicer.
func NewItemService(db *gorm.DB) ItemServicer {
	return &itemService{db: db}
}

// CreateItem creates an item for a user. Item names are trimmed and
// lower-cased so "Rice" and "rice" are the same item. Re-creating a
// deleted name restores the original row.
func (s *itemService) CreateItem(userID uint, name string) (*models.Item, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item name is required")
	}

	var count int64
	if err := s.db.Model(&models.Item{}).Where("user_id = ? AND name = ?", userID, name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "an item with this name already exists")
	}

	// A soft-deleted row with this name still holds the unique index slot,
	// so a fresh insert would fail. Restore it instead.
	var deleted models.Item
	err := s.db.Unscoped().
		Where("user_id = ? AND name = ? AND deleted_at IS NOT NULL", userID, name).
		First(&deleted).Error
	if err == nil {
		if err := s.db.Unscoped().Model(&deleted).Update("deleted_at", nil).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		deleted.DeletedAt = gorm.DeletedAt{}
		return &deleted, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	item := &models.Item{UserID: userID, Name: name}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// GetUserItems retrieves a paginated list of the user's items.
func (s *itemService) GetUserItems(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Item], error) {
	page.Defaults()

	base := s.db.Model(&models.Item{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var items []models.Item
	if err := base.Scopes(pagination.Paginate(page)).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(items, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetItemByID retrieves an item by ID for a specific user.
func (s *itemService) GetItemByID(userID, itemID uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// UpdateItem renames an item, applying the same normalization as create.
func (s *itemService) UpdateItem(userID, itemID uint, name string) (*models.Item, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item name is required")
	}

	item, err := s.GetItemByID(userID, itemID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Item{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, itemID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "an item with this name already exists")
	}

	if err := s.db.Model(item).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// DeleteItem soft-deletes an item. Line items referencing it keep their rows.
func (s *itemService) DeleteItem(userID, itemID uint) error {
	item, err := s.GetItemByID(userID, itemID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
