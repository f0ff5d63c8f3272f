package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
)

type tagService struct {
	db *gorm.DB
}

// NewTagService creates a new TagServicer.
func NewTagService(db *gorm.DB) TagServicer {
	return &tagService{db: db}
}

// CreateTag creates a tag for a user. Names are trimmed but keep their
// casing; duplicates within a user are rejected. Re-creating a deleted
// name restores the original row.
func (s *tagService) CreateTag(userID uint, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tag name is required")
	}

	var count int64
	if err := s.db.Model(&models.Tag{}).Where("user_id = ? AND name = ?", userID, name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a tag with this name already exists")
	}

	// A soft-deleted row with this name still holds the unique index slot,
	// so a fresh insert would fail. Restore it instead.
	var deleted models.Tag
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

	tag := &models.Tag{UserID: userID, Name: name}
	if err := s.db.Create(tag).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tag, nil
}

// GetUserTags retrieves a paginated list of the user's tags.
func (s *tagService) GetUserTags(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Tag], error) {
	page.Defaults()

	base := s.db.Model(&models.Tag{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tags []models.Tag
	if err := base.Scopes(pagination.Paginate(page)).
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(tags, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTagByID retrieves a tag by ID for a specific user.
func (s *tagService) GetTagByID(userID, tagID uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.Where("id = ? AND user_id = ?", tagID, userID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tag, nil
}

// UpdateTag renames a tag.
func (s *tagService) UpdateTag(userID, tagID uint, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tag name is required")
	}

	tag, err := s.GetTagByID(userID, tagID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Tag{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, tagID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a tag with this name already exists")
	}

	if err := s.db.Model(tag).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tag, nil
}

// DeleteTag soft-deletes a tag and detaches it from any expenses.
func (s *tagService) DeleteTag(userID, tagID uint) error {
	tag, err := s.GetTagByID(userID, tagID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Exec("DELETE FROM expense_tags WHERE tag_id = ?", tag.ID).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Delete(tag).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
}
