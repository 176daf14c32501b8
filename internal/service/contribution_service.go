package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "nerd/internal/errors"
	"nerd/internal/events"
	"nerd/internal/model"
	"nerd/internal/notify"
	"nerd/internal/repository"
	"nerd/internal/storage"
)

// SubmitInput is a contribution as uploaded by a user.
type SubmitInput struct {
	Title            string
	Description      string
	Tags             string // optional, comma-separated
	ContributorID    string
	ContributorName  string
	ContributorEmail string
	FileName         string
	ContentType      string
	File             []byte
}

// ContributionService accepts new contributions.
type ContributionService interface {
	Submit(ctx context.Context, in SubmitInput) (*model.UnverifiedContribution, error)
	ListMine(ctx context.Context, contributorID string) ([]model.ContributionSummary, error)
}

type contributionService struct {
	pending   repository.ContributionRepository
	verified  repository.VerifiedRepository
	materials repository.MaterialRepository
	store     storage.ObjectStore
	notifier  notify.Notifier
	events    events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewContributionService creates a new intake service.
func NewContributionService(
	pending repository.ContributionRepository,
	verified repository.VerifiedRepository,
	materials repository.MaterialRepository,
	store storage.ObjectStore,
	notifier notify.Notifier,
	publisher events.Publisher,
	logger *zap.Logger,
) ContributionService {
	return &contributionService{
		pending:   pending,
		verified:  verified,
		materials: materials,
		store:     store,
		notifier:  notifier,
		events:    publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func validateSubmission(in *SubmitInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ContributorID = strings.TrimSpace(in.ContributorID)
	in.ContributorName = strings.TrimSpace(in.ContributorName)

	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	case in.ContributorID == "":
		return fmt.Errorf("%w: contributor id is required", apperrors.ErrValidation)
	case in.ContributorName == "":
		return fmt.Errorf("%w: contributor name is required", apperrors.ErrValidation)
	case len(in.File) == 0:
		return fmt.Errorf("%w: a non-empty file is required", apperrors.ErrValidation)
	}
	return nil
}

// Submit stores the file and records a pending contribution. Nothing is
// written when validation fails. A failed record write leaves the stored
// file in place.
func (s *contributionService) Submit(ctx context.Context, in SubmitInput) (*model.UnverifiedContribution, error) {
	if err := validateSubmission(&in); err != nil {
		return nil, err
	}

	key := storage.ContributionKey(in.ContributorID, in.FileName, s.now())
	fileURL, err := s.store.Put(ctx, key, in.ContentType, in.File)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	contribution := &model.UnverifiedContribution{
		Title:           in.Title,
		Description:     in.Description,
		ContributorID:   in.ContributorID,
		ContributorName: in.ContributorName,
		FileURL:         fileURL,
		FileType:        in.ContentType,
		Tags:            model.ParseTags(in.Tags),
	}
	if err := s.pending.Create(ctx, contribution); err != nil {
		s.logger.Error("record contribution, stored file left behind",
			zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("record contribution: %w", err)
	}

	s.events.Publish(ctx, events.Change{
		Collection: events.CollectionPending,
		ID:         contribution.ID.String(),
		Action:     events.ActionCreated,
	})

	alert := notify.ContributionAlert{
		ContributorID:    in.ContributorID,
		ContributorEmail: in.ContributorEmail,
		ContributorName:  in.ContributorName,
		Title:            in.Title,
		Description:      in.Description,
		FileURL:          fileURL,
	}
	if err := s.notifier.ContributionSubmitted(ctx, alert); err != nil {
		s.logger.Warn("contribution alert not sent",
			zap.String("contribution_id", contribution.ID.String()), zap.Error(err))
	}

	s.logger.Info("contribution submitted",
		zap.String("contribution_id", contribution.ID.String()),
		zap.String("contributor_id", in.ContributorID))
	return contribution, nil
}

// ListMine returns everything a contributor submitted, in whichever stage it
// is now, newest first.
func (s *contributionService) ListMine(ctx context.Context, contributorID string) ([]model.ContributionSummary, error) {
	pending, err := s.pending.ListByContributor(ctx, contributorID)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	verified, err := s.verified.ListByContributor(ctx, contributorID)
	if err != nil {
		return nil, fmt.Errorf("list verified: %w", err)
	}
	published, err := s.materials.ListByContributor(ctx, contributorID)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}

	out := make([]model.ContributionSummary, 0, len(pending)+len(verified)+len(published))
	for _, c := range pending {
		out = append(out, model.ContributionSummary{
			ID: c.ID, Stage: model.StagePending, Title: c.Title, FileURL: c.FileURL,
			Tags: nonNilTags(c.Tags), Timestamp: c.CreatedAt,
		})
	}
	for _, v := range verified {
		out = append(out, model.ContributionSummary{
			ID: v.ID, Stage: model.StageVerified, Title: v.Title, FileURL: v.FileURL,
			Tags: nonNilTags(v.Tags), Timestamp: v.VerifiedAt,
		})
	}
	for _, m := range published {
		out = append(out, model.ContributionSummary{
			ID: m.ID, Stage: model.StagePublished, Title: m.Title, FileURL: m.FileURL,
			Tags: nonNilTags(m.Tags), Timestamp: m.PublishedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
