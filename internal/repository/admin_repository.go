package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nerd/internal/model"
)

// AdminRepository stores the admin roster keyed by normalized email.
type AdminRepository interface {
	Add(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Remove(ctx context.Context, key string) error
	List(ctx context.Context) ([]model.AdminEntry, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin roster repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Add inserts the key; adding an existing key is a no-op.
func (r *adminRepository) Add(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AdminEntry{Key: key}).Error
}

// Exists checks roster membership.
func (r *adminRepository) Exists(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AdminEntry{}).Where("`key` = ?", key).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Remove deletes the key; removing a missing key is a no-op.
func (r *adminRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("`key` = ?", key).Delete(&model.AdminEntry{}).Error
}

// List returns every roster entry.
func (r *adminRepository) List(ctx context.Context) ([]model.AdminEntry, error) {
	var entries []model.AdminEntry
	if err := r.db.WithContext(ctx).Order("`key`").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
