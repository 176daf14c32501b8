package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "nerd/internal/errors"
	"nerd/internal/model"
)

// VerifiedRepository defines persistence for verified contributions.
type VerifiedRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.VerifiedContribution, error)
	List(ctx context.Context) ([]model.VerifiedContribution, error)
	ListByContributor(ctx context.Context, contributorID string) ([]model.VerifiedContribution, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, version int, patch MetadataPatch) (*model.VerifiedContribution, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type verifiedRepository struct {
	db *gorm.DB
}

// NewVerifiedRepository creates a new verified contribution repository.
func NewVerifiedRepository(db *gorm.DB) VerifiedRepository {
	return &verifiedRepository{db: db}
}

func (r *verifiedRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.VerifiedContribution, error) {
	var v model.VerifiedContribution
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *verifiedRepository) List(ctx context.Context) ([]model.VerifiedContribution, error) {
	var items []model.VerifiedContribution
	if err := r.db.WithContext(ctx).Order("verified_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *verifiedRepository) ListByContributor(ctx context.Context, contributorID string) ([]model.VerifiedContribution, error) {
	var items []model.VerifiedContribution
	if err := r.db.WithContext(ctx).Where("contributor_id = ?", contributorID).
		Order("verified_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *verifiedRepository) UpdateMetadata(ctx context.Context, id uuid.UUID, version int, patch MetadataPatch) (*model.VerifiedContribution, error) {
	res := r.db.WithContext(ctx).Model(&model.VerifiedContribution{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"title":       patch.Title,
			"description": patch.Description,
			"tags":        datatypes.NewJSONSlice(patch.Tags),
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrConflict
	}
	return r.FindByID(ctx, id)
}

func (r *verifiedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VerifiedContribution{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
