package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// Tag and item resolution: idempotent, user-scoped get-or-create from
// free-text names, run inside the caller's transaction. Live rows are never
// renamed or deleted; soft-deleted rows matching a requested name are
// restored; unreferenced tags and items are left in place.

// normalizeNames trims whitespace, drops empties, and de-duplicates preserving
// first-seen order. The dedupe key is case-insensitive so inputs differing
// only by case collapse to one name, with the first-seen casing kept. When
// lower is true the kept names themselves are lower-cased (item identity is
// case-insensitive; tags stay case-sensitive as given).
func normalizeNames(names []string, lower bool) []string {
	seen := make(map[string]struct{}, len(names))
	norm := make([]string, 0, len(names))
	for _, name := range names {
		n := strings.TrimSpace(name)
		if n == "" {
			continue
		}
		if lower {
			n = strings.ToLower(n)
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		norm = append(norm, n)
	}
	return norm
}

// resolveTags returns the user's persisted tags for the given names, creating
// any that do not yet exist. Creation uses insert-on-conflict-do-nothing
// followed by a re-read, so a concurrent create racing on the unique
// (user_id, name) pair is recovered instead of surfaced.
func resolveTags(tx *gorm.DB, userID uint, names []string) ([]models.Tag, error) {
	norm := normalizeNames(names, false)
	if len(norm) == 0 {
		return []models.Tag{}, nil
	}

	// A soft-deleted row still occupies the unique (user_id, name) slot: the
	// insert below would hit the conflict clause and the re-read would miss
	// the row, dropping the name. Restore such rows before looking up.
	if err := tx.Unscoped().Model(&models.Tag{}).
		Where("user_id = ? AND name IN ? AND deleted_at IS NOT NULL", userID, norm).
		Update("deleted_at", nil).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var existing []models.Tag
	if err := tx.Where("user_id = ? AND name IN ?", userID, norm).Find(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byName := make(map[string]models.Tag, len(existing))
	for _, t := range existing {
		byName[t.Name] = t
	}

	var missing []models.Tag
	for _, n := range norm {
		if _, ok := byName[n]; !ok {
			missing = append(missing, models.Tag{UserID: userID, Name: n})
		}
	}

	if len(missing) > 0 {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&missing).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Re-read so rows skipped by the conflict clause get their real IDs.
		var created []models.Tag
		if err := tx.Where("user_id = ? AND name IN ?", userID, norm).Find(&created).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, t := range created {
			byName[t.Name] = t
		}
	}

	resolved := make([]models.Tag, 0, len(norm))
	for _, n := range norm {
		if t, ok := byName[n]; ok {
			resolved = append(resolved, t)
		}
	}
	return resolved, nil
}

// resolveItems is resolveTags for items; item names are lower-cased before
// lookup and storage.
func resolveItems(tx *gorm.DB, userID uint, names []string) ([]models.Item, error) {
	norm := normalizeNames(names, true)
	if len(norm) == 0 {
		return []models.Item{}, nil
	}

	if err := tx.Unscoped().Model(&models.Item{}).
		Where("user_id = ? AND name IN ? AND deleted_at IS NOT NULL", userID, norm).
		Update("deleted_at", nil).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var existing []models.Item
	if err := tx.Where("user_id = ? AND name IN ?", userID, norm).Find(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byName := make(map[string]models.Item, len(existing))
	for _, it := range existing {
		byName[it.Name] = it
	}

	var missing []models.Item
	for _, n := range norm {
		if _, ok := byName[n]; !ok {
			missing = append(missing, models.Item{UserID: userID, Name: n})
		}
	}

	if len(missing) > 0 {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&missing).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		var created []models.Item
		if err := tx.Where("user_id = ? AND name IN ?", userID, norm).Find(&created).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, it := range created {
			byName[it.Name] = it
		}
	}

	resolved := make([]models.Item, 0, len(norm))
	for _, n := range norm {
		if it, ok := byName[n]; ok {
			resolved = append(resolved, it)
		}
	}
	return resolved, nil
}
