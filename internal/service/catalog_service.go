package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

const (
	catalogCacheTTL = 5 * time.Minute
	downloadURLTTL  = 15 * time.Minute
)

// AddMaterialInput is a material an admin publishes without the pipeline.
type AddMaterialInput struct {
	Title           string
	Description     string
	Tags            string // comma-separated, at least one
	ContributorID   string
	ContributorName string
	FileName        string
	ContentType     string
	File            []byte
}

// CatalogService serves published materials.
type CatalogService interface {
	List(ctx context.Context) ([]model.Material, error)
	Search(ctx context.Context, term string) ([]model.Material, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Material, error)
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	AddDirect(ctx context.Context, in AddMaterialInput) (*model.Material, error)
	Delete(ctx context.Context, id uuid.UUID, confirm bool) (*DeletionResult, error)
}

type catalogService struct {
	materials repository.MaterialRepository
	store     storage.ObjectStore
	cache     *cache.Client
	events    events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	materials repository.MaterialRepository,
	store storage.ObjectStore,
	cache *cache.Client,
	publisher events.Publisher,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		materials: materials,
		store:     store,
		cache:     cache,
		events:    publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns every published material, newest first.
func (s *catalogService) List(ctx context.Context) ([]model.Material, error) {
	var cached []model.Material
	if s.cache.GetJSON(ctx, catalogCacheKey, &cached) {
		return cached, nil
	}

	items, err := s.materials.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Material{}
	}

	_ = s.cache.SetJSON(ctx, catalogCacheKey, items, catalogCacheTTL)
	return items, nil
}

// Search returns materials with a tag starting with term, ignoring case.
// An empty term matches nothing.
func (s *catalogService) Search(ctx context.Context, term string) ([]model.Material, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []model.Material{}, nil
	}

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Material, 0)
	for _, m := range all {
		if model.MatchesTagPrefix(m.Tags, term) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	return s.materials.FindByID(ctx, id)
}

// DownloadURL returns a short-lived link to the material's file. Files kept
// outside the object store are linked directly.
func (s *catalogService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	m, err := s.materials.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	key, err := s.store.KeyFromURL(m.FileURL)
	if errors.Is(err, storage.ErrForeignURL) {
		return m.FileURL, nil
	}
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, key, downloadURLTTL)
}

// AddDirect uploads a file and publishes it straight away.
func (s *catalogService) AddDirect(ctx context.Context, in AddMaterialInput) (*model.Material, error) {
	tags := model.ParseTags(in.Tags)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ContributorID = strings.TrimSpace(in.ContributorID)

	switch {
	case in.Title == "":
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	case in.Description == "":
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	case len(tags) == 0:
		return nil, fmt.Errorf("%w: at least one tag is required", apperrors.ErrValidation)
	case in.ContributorID == "":
		return nil, fmt.Errorf("%w: contributor id is required", apperrors.ErrValidation)
	case len(in.File) == 0:
		return nil, fmt.Errorf("%w: a non-empty file is required", apperrors.ErrValidation)
	}

	now := s.now()
	fileURL, err := s.store.Put(ctx, storage.MaterialKey(in.FileName, now), in.ContentType, in.File)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	material := &model.Material{
		Title:           in.Title,
		Description:     in.Description,
		Tags:            tags,
		ContributorID:   in.ContributorID,
		ContributorName: strings.TrimSpace(in.ContributorName),
		FileURL:         fileURL,
		FileType:        in.ContentType,
		PublishedAt:     now,
		PublishedBy:     in.ContributorID,
	}
	if err := s.materials.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("record material: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	s.events.Publish(ctx, events.Change{Collection: events.CollectionMaterials, ID: material.ID.String(), Action: events.ActionCreated})
	s.logger.Info("material added", zap.String("material_id", material.ID.String()), zap.String("admin_id", in.ContributorID))
	return material, nil
}

// Delete removes the stored file and then the material. If the file cannot
// be removed the material stays.
func (s *catalogService) Delete(ctx context.Context, id uuid.UUID, confirm bool) (*DeletionResult, error) {
	if !confirm {
		return nil, apperrors.ErrConfirmationRequired
	}

	m, err := s.materials.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fileDeleted := false
	key, err := s.store.KeyFromURL(m.FileURL)
	switch {
	case errors.Is(err, storage.ErrForeignURL):
		s.logger.Info("material file is not in the object store", zap.String("file_url", m.FileURL))
	case err != nil:
		return nil, err
	default:
		if err := s.store.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("delete material file: %w", err)
		}
		fileDeleted = true
	}

	if err := s.materials.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete material: %w", err)
	}

	invalidateCatalog(ctx, s.cache)
	s.events.Publish(ctx, events.Change{Collection: events.CollectionMaterials, ID: id.String(), Action: events.ActionDeleted})
	s.logger.Info("material deleted", zap.String("id", id.String()), zap.Bool("file_deleted", fileDeleted))
	return &DeletionResult{ID: id, FileDeleted: fileDeleted}, nil
}
