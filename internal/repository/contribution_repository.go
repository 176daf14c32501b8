package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "nerd/internal/errors"
	"nerd/internal/model"
)

// MetadataPatch is the editable part of a pipeline record.
type MetadataPatch struct {
	Title       string
	Description string
	Tags        []string
}

// ContributionRepository defines persistence for contributions awaiting review.
type ContributionRepository interface {
	Create(ctx context.Context, c *model.UnverifiedContribution) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UnverifiedContribution, error)
	List(ctx context.Context) ([]model.UnverifiedContribution, error)
	ListByContributor(ctx context.Context, contributorID string) ([]model.UnverifiedContribution, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, version int, patch MetadataPatch) (*model.UnverifiedContribution, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new pending contribution repository.
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

// Create creates a new pending contribution.
func (r *contributionRepository) Create(ctx context.Context, c *model.UnverifiedContribution) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

// FindByID finds a pending contribution by ID.
func (r *contributionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UnverifiedContribution, error) {
	var c model.UnverifiedContribution
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// List returns pending contributions, newest first.
func (r *contributionRepository) List(ctx context.Context) ([]model.UnverifiedContribution, error) {
	var items []model.UnverifiedContribution
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByContributor returns one contributor's pending submissions, newest first.
func (r *contributionRepository) ListByContributor(ctx context.Context, contributorID string) ([]model.UnverifiedContribution, error) {
	var items []model.UnverifiedContribution
	if err := r.db.WithContext(ctx).Where("contributor_id = ?", contributorID).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateMetadata rewrites title, description and tags if version still matches.
func (r *contributionRepository) UpdateMetadata(ctx context.Context, id uuid.UUID, version int, patch MetadataPatch) (*model.UnverifiedContribution, error) {
	res := r.db.WithContext(ctx).Model(&model.UnverifiedContribution{}).
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

// Delete removes a pending contribution.
func (r *contributionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UnverifiedContribution{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
