package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "nerd/internal/errors"
	"nerd/internal/model"
)

// PromotionRepository moves records between pipeline stages. Each promotion
// inserts the destination row and deletes the source row in one transaction,
// so a record is never visible in two stages or in none.
type PromotionRepository interface {
	PromoteToVerified(ctx context.Context, id uuid.UUID, version int,
		build func(src *model.UnverifiedContribution) (*model.VerifiedContribution, error)) (*model.VerifiedContribution, error)
	PromoteToPublished(ctx context.Context, id uuid.UUID, version int,
		build func(src *model.VerifiedContribution) (*model.Material, error)) (*model.Material, error)
}

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository.
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

// PromoteToVerified replaces a pending contribution with the verified record
// built from it. A stale version yields ErrConflict.
func (r *promotionRepository) PromoteToVerified(ctx context.Context, id uuid.UUID, version int,
	build func(src *model.UnverifiedContribution) (*model.VerifiedContribution, error)) (*model.VerifiedContribution, error) {
	var dst *model.VerifiedContribution
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src model.UnverifiedContribution
		if err := tx.Where("id = ?", id).First(&src).Error; err != nil {
			return translate(err)
		}
		if src.Version != version {
			return apperrors.ErrConflict
		}

		built, err := build(&src)
		if err != nil {
			return err
		}
		built.SourceID = src.ID
		if err := tx.Create(built).Error; err != nil {
			return fmt.Errorf("insert verified contribution: %w", translate(err))
		}

		res := tx.Where("id = ? AND version = ?", src.ID, version).Delete(&model.UnverifiedContribution{})
		if res.Error != nil {
			return fmt.Errorf("delete pending contribution: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrConflict
		}
		dst = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// PromoteToPublished replaces a verified contribution with the published
// material built from it. A stale version yields ErrConflict.
func (r *promotionRepository) PromoteToPublished(ctx context.Context, id uuid.UUID, version int,
	build func(src *model.VerifiedContribution) (*model.Material, error)) (*model.Material, error) {
	var dst *model.Material
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src model.VerifiedContribution
		if err := tx.Where("id = ?", id).First(&src).Error; err != nil {
			return translate(err)
		}
		if src.Version != version {
			return apperrors.ErrConflict
		}

		built, err := build(&src)
		if err != nil {
			return err
		}
		sourceID := src.ID
		built.SourceID = &sourceID
		if err := tx.Create(built).Error; err != nil {
			return fmt.Errorf("insert material: %w", translate(err))
		}

		res := tx.Where("id = ? AND version = ?", src.ID, version).Delete(&model.VerifiedContribution{})
		if res.Error != nil {
			return fmt.Errorf("delete verified contribution: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrConflict
		}
		dst = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}
