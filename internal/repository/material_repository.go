package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "nerd/internal/errors"
	"nerd/internal/model"
)

// MaterialRepository defines persistence for published materials.
type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	Update(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	FindByFileURL(ctx context.Context, fileURL string) (*model.Material, error)
	List(ctx context.Context) ([]model.Material, error)
	ListByContributor(ctx context.Context, contributorID string) ([]model.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository.
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, m *model.Material) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

// Update saves every field of an existing material.
func (r *materialRepository) Update(ctx context.Context, m *model.Material) error {
	return translate(r.db.WithContext(ctx).Save(m).Error)
}

func (r *materialRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *materialRepository) FindByFileURL(ctx context.Context, fileURL string) (*model.Material, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).Where("file_url = ?", fileURL).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// List returns every published material, newest first.
func (r *materialRepository) List(ctx context.Context) ([]model.Material, error) {
	var items []model.Material
	if err := r.db.WithContext(ctx).Order("published_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *materialRepository) ListByContributor(ctx context.Context, contributorID string) ([]model.Material, error) {
	var items []model.Material
	if err := r.db.WithContext(ctx).Where("contributor_id = ?", contributorID).
		Order("published_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *materialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Material{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
