package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "nerd/internal/errors"
	"nerd/internal/events"
	"nerd/internal/model"
	"nerd/internal/repository"
	"nerd/internal/storage"
)

// ModerationService reviews pending contributions.
type ModerationService interface {
	ListPending(ctx context.Context) ([]model.UnverifiedContribution, error)
	GetPending(ctx context.Context, id uuid.UUID) (*model.UnverifiedContribution, error)
	UpdatePending(ctx context.Context, id uuid.UUID, version int, in MetadataInput) (*model.UnverifiedContribution, error)
	Verify(ctx context.Context, id uuid.UUID, version int, in MetadataInput, adminID string) (*model.VerifiedContribution, error)
	Reject(ctx context.Context, id uuid.UUID, confirm bool) (*DeletionResult, error)
}

type moderationService struct {
	pending    repository.ContributionRepository
	promotions repository.PromotionRepository
	store      storage.ObjectStore
	events     events.Publisher
	logger     *zap.Logger
	now        func() time.Time
}

// NewModerationService creates a new moderation service.
func NewModerationService(
	pending repository.ContributionRepository,
	promotions repository.PromotionRepository,
	store storage.ObjectStore,
	publisher events.Publisher,
	logger *zap.Logger,
) ModerationService {
	return &moderationService{
		pending:    pending,
		promotions: promotions,
		store:      store,
		events:     publisher,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *moderationService) ListPending(ctx context.Context) ([]model.UnverifiedContribution, error) {
	return s.pending.List(ctx)
}

func (s *moderationService) GetPending(ctx context.Context, id uuid.UUID) (*model.UnverifiedContribution, error) {
	return s.pending.FindByID(ctx, id)
}

// UpdatePending edits a pending contribution in place. version must match
// the stored one.
func (s *moderationService) UpdatePending(ctx context.Context, id uuid.UUID, version int, in MetadataInput) (*model.UnverifiedContribution, error) {
	if err := checkVersion(version); err != nil {
		return nil, err
	}
	current, err := s.pending.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Version != version {
		return nil, apperrors.ErrConflict
	}

	patch, err := mergeMetadata(current.Title, current.Description, current.Tags, in, false)
	if err != nil {
		return nil, err
	}
	updated, err := s.pending.UpdateMetadata(ctx, id, version, patch)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, events.Change{Collection: events.CollectionPending, ID: id.String(), Action: events.ActionUpdated})
	return updated, nil
}

// Verify promotes a pending contribution to the verified stage, applying
// any overrides. The pending record disappears in the same transaction.
func (s *moderationService) Verify(ctx context.Context, id uuid.UUID, version int, in MetadataInput, adminID string) (*model.VerifiedContribution, error) {
	if err := checkVersion(version); err != nil {
		return nil, err
	}

	verified, err := s.promotions.PromoteToVerified(ctx, id, version, func(src *model.UnverifiedContribution) (*model.VerifiedContribution, error) {
		patch, err := mergeMetadata(src.Title, src.Description, src.Tags, in, true)
		if err != nil {
			return nil, err
		}
		return &model.VerifiedContribution{
			Title:           patch.Title,
			Description:     patch.Description,
			Tags:            patch.Tags,
			ContributorID:   src.ContributorID,
			ContributorName: src.ContributorName,
			FileURL:         src.FileURL,
			FileType:        src.FileType,
			SubmittedAt:     src.CreatedAt,
			VerifiedAt:      s.now(),
			VerifiedBy:      adminID,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, events.Change{Collection: events.CollectionPending, ID: id.String(), Action: events.ActionDeleted})
	s.events.Publish(ctx, events.Change{Collection: events.CollectionVerified, ID: verified.ID.String(), Action: events.ActionCreated})
	s.logger.Info("contribution verified",
		zap.String("source_id", id.String()),
		zap.String("verified_id", verified.ID.String()),
		zap.String("admin_id", adminID))
	return verified, nil
}

// Reject deletes a pending contribution and then its stored file.
func (s *moderationService) Reject(ctx context.Context, id uuid.UUID, confirm bool) (*DeletionResult, error) {
	if !confirm {
		return nil, apperrors.ErrConfirmationRequired
	}

	current, err := s.pending.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.pending.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete pending contribution: %w", err)
	}
	s.events.Publish(ctx, events.Change{Collection: events.CollectionPending, ID: id.String(), Action: events.ActionDeleted})

	result := &DeletionResult{ID: id, FileDeleted: deleteStoredFile(ctx, s.store, s.logger, current.FileURL)}
	s.logger.Info("contribution rejected", zap.String("id", id.String()), zap.Bool("file_deleted", result.FileDeleted))
	return result, nil
}
