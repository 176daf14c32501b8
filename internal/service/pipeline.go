package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nerd/internal/cache"
	apperrors "nerd/internal/errors"
	"nerd/internal/model"
	"nerd/internal/repository"
	"nerd/internal/storage"
)

const catalogCacheKey = "materials:all"

// MetadataInput carries optional overrides for a pipeline record.
// A nil field keeps the record's current value.
type MetadataInput struct {
	Title       *string
	Description *string
	Tags        *string // comma-separated
}

// DeletionResult reports a destructive operation. FileDeleted is false when
// the record is gone but its stored file could not be removed.
type DeletionResult struct {
	ID          uuid.UUID `json:"id"`
	FileDeleted bool      `json:"file_deleted"`
}

// mergeMetadata applies overrides on top of the current values. Tags are
// carried forward unless overridden.
func mergeMetadata(title, description string, tags []string, in MetadataInput, requireTags bool) (repository.MetadataPatch, error) {
	patch := repository.MetadataPatch{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Tags:        append([]string(nil), tags...),
	}
	if in.Title != nil {
		patch.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		patch.Description = strings.TrimSpace(*in.Description)
	}
	if in.Tags != nil {
		patch.Tags = model.ParseTags(*in.Tags)
	}
	if patch.Tags == nil {
		patch.Tags = []string{}
	}

	switch {
	case patch.Title == "":
		return patch, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	case patch.Description == "":
		return patch, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	case requireTags && len(patch.Tags) == 0:
		return patch, fmt.Errorf("%w: at least one tag is required", apperrors.ErrValidation)
	}
	return patch, nil
}

func checkVersion(version int) error {
	if version < 1 {
		return fmt.Errorf("%w: version is required", apperrors.ErrValidation)
	}
	return nil
}

// deleteStoredFile removes the object behind fileURL. Failures are logged and
// reported as false; they are not retried.
func deleteStoredFile(ctx context.Context, store storage.ObjectStore, logger *zap.Logger, fileURL string) bool {
	key, err := store.KeyFromURL(fileURL)
	if err != nil {
		if errors.Is(err, storage.ErrForeignURL) {
			logger.Info("file is not in the object store, nothing to delete", zap.String("file_url", fileURL))
		} else {
			logger.Warn("resolve file key", zap.String("file_url", fileURL), zap.Error(err))
		}
		return false
	}
	if err := store.Delete(ctx, key); err != nil {
		logger.Error("delete stored file", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func invalidateCatalog(ctx context.Context, c *cache.Client) {
	_ = c.Delete(ctx, catalogCacheKey)
}
