package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nerd/internal/cache"
	apperrors "nerd/internal/errors"
	"nerd/internal/events"
	"nerd/internal/model"
	"nerd/internal/repository"
	"nerd/internal/storage"
)

// PublicationService moves verified contributions into the public catalog.
type PublicationService interface {
	ListVerified(ctx context.Context) ([]model.VerifiedContribution, error)
	GetVerified(ctx context.Context, id uuid.UUID) (*model.VerifiedContribution, error)
	UpdateVerified(ctx context.Context, id uuid.UUID, version int, in MetadataInput) (*model.VerifiedContribution, error)
	Finalize(ctx context.Context, id uuid.UUID, version int, in MetadataInput, adminID string) (*model.Material, error)
	DeleteVerified(ctx context.Context, id uuid.UUID, confirm bool) (*DeletionResult, error)
}

type publicationService struct {
	verified   repository.VerifiedRepository
	promotions repository.PromotionRepository
	store      storage.ObjectStore
	cache      *cache.Client
	events     events.Publisher
	logger     *zap.Logger
	now        func() time.Time
}

// NewPublicationService creates a new publication service.
func NewPublicationService(
	verified repository.VerifiedRepository,
	promotions repository.PromotionRepository,
	store storage.ObjectStore,
	cache *cache.Client,
	publisher events.Publisher,
	logger *zap.Logger,
) PublicationService {
	return &publicationService{
		verified:   verified,
		promotions: promotions,
		store:      store,
		cache:      cache,
		events:     publisher,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *publicationService) ListVerified(ctx context.Context) ([]model.VerifiedContribution, error) {
	return s.verified.List(ctx)
}

func (s *publicationService) GetVerified(ctx context.Context, id uuid.UUID) (*model.VerifiedContribution, error) {
	return s.verified.FindByID(ctx, id)
}

func (s *publicationService) UpdateVerified(ctx context.Context, id uuid.UUID, version int, in MetadataInput) (*model.VerifiedContribution, error) {
	if err := checkVersion(version); err != nil {
		return nil, err
	}
	current, err := s.verified.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Version != version {
		return nil, apperrors.ErrConflict
	}

	patch, err := mergeMetadata(current.Title, current.Description, current.Tags, in, true)
	if err != nil {
		return nil, err
	}
	updated, err := s.verified.UpdateMetadata(ctx, id, version, patch)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, events.Change{Collection: events.CollectionVerified, ID: id.String(), Action: events.ActionUpdated})
	return updated, nil
}

// Finalize publishes a verified contribution. Verified tags are carried
// forward unless overridden.
func (s *publicationService) Finalize(ctx context.Context, id uuid.UUID, version int, in MetadataInput, adminID string) (*model.Material, error) {
	if err := checkVersion(version); err != nil {
		return nil, err
	}

	material, err := s.promotions.PromoteToPublished(ctx, id, version, func(src *model.VerifiedContribution) (*model.Material, error) {
		patch, err := mergeMetadata(src.Title, src.Description, src.Tags, in, true)
		if err != nil {
			return nil, err
		}
		return &model.Material{
			Title:           patch.Title,
			Description:     patch.Description,
			Tags:            patch.Tags,
			ContributorID:   src.ContributorID,
			ContributorName: src.ContributorName,
			FileURL:         src.FileURL,
			FileType:        src.FileType,
			PublishedAt:     s.now(),
			PublishedBy:     adminID,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, s.cache)
	s.events.Publish(ctx, events.Change{Collection: events.CollectionVerified, ID: id.String(), Action: events.ActionDeleted})
	s.events.Publish(ctx, events.Change{Collection: events.CollectionMaterials, ID: material.ID.String(), Action: events.ActionCreated})
	s.logger.Info("material published",
		zap.String("source_id", id.String()),
		zap.String("material_id", material.ID.String()),
		zap.String("admin_id", adminID))
	return material, nil
}

// DeleteVerified deletes a verified contribution and then its stored file.
func (s *publicationService) DeleteVerified(ctx context.Context, id uuid.UUID, confirm bool) (*DeletionResult, error) {
	if !confirm {
		return nil, apperrors.ErrConfirmationRequired
	}

	current, err := s.verified.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.verified.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete verified contribution: %w", err)
	}
	s.events.Publish(ctx, events.Change{Collection: events.CollectionVerified, ID: id.String(), Action: events.ActionDeleted})

	result := &DeletionResult{ID: id, FileDeleted: deleteStoredFile(ctx, s.store, s.logger, current.FileURL)}
	s.logger.Info("verified contribution deleted", zap.String("id", id.String()), zap.Bool("file_deleted", result.FileDeleted))
	return result, nil
}
