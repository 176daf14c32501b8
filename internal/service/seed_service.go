package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"nerd/internal/cache"
	apperrors "nerd/internal/errors"
	"nerd/internal/model"
	"nerd/internal/repository"
)

// SeedMaterial is one published material in a seed file.
type SeedMaterial struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	FileURL         string   `json:"file_url"`
	FileType        string   `json:"file_type"`
	ContributorID   string   `json:"contributor_id"`
	ContributorName string   `json:"contributor_name"`
}

// SeedData is the bulk-load document: roster emails and published materials.
type SeedData struct {
	Admins    []string       `json:"admins"`
	Materials []SeedMaterial `json:"materials"`
}

// SeedResult counts what a seed run changed.
type SeedResult struct {
	AdminsAdded      int `json:"admins_added"`
	MaterialsCreated int `json:"materials_created"`
	MaterialsUpdated int `json:"materials_updated"`
	Skipped          int `json:"skipped"`
}

// SeedService loads fixture data. Re-running a seed updates materials in
// place, matched by file URL.
type SeedService interface {
	Seed(ctx context.Context, data SeedData) (*SeedResult, error)
}

// RosterCache drops cached roster answers for an email.
// *auth.RoleResolver implements it.
type RosterCache interface {
	Forget(ctx context.Context, email string)
}

type seedService struct {
	admins    repository.AdminRepository
	materials repository.MaterialRepository
	roles     RosterCache
	cache     *cache.Client
	logger    *zap.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(
	admins repository.AdminRepository,
	materials repository.MaterialRepository,
	roles RosterCache,
	cache *cache.Client,
	logger *zap.Logger,
) SeedService {
	return &seedService{admins: admins, materials: materials, roles: roles, cache: cache, logger: logger}
}

func (s *seedService) Seed(ctx context.Context, data SeedData) (*SeedResult, error) {
	result := &SeedResult{}

	for _, email := range data.Admins {
		key := model.NormalizeEmailKey(email)
		if key == "" {
			result.Skipped++
			continue
		}
		if err := s.admins.Add(ctx, key); err != nil {
			return result, fmt.Errorf("seed admin %s: %w", key, err)
		}
		s.roles.Forget(ctx, email)
		result.AdminsAdded++
	}

	for _, item := range data.Materials {
		tags := model.ParseTags(strings.Join(item.Tags, ","))
		if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.FileURL) == "" || len(tags) == 0 {
			s.logger.Warn("skipping seed material", zap.String("title", item.Title), zap.String("file_url", item.FileURL))
			result.Skipped++
			continue
		}

		existing, err := s.materials.FindByFileURL(ctx, item.FileURL)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return result, fmt.Errorf("look up material %s: %w", item.FileURL, err)
		}

		if existing != nil {
			existing.Title = strings.TrimSpace(item.Title)
			existing.Description = strings.TrimSpace(item.Description)
			existing.Tags = tags
			existing.FileType = item.FileType
			if err := s.materials.Update(ctx, existing); err != nil {
				return result, fmt.Errorf("update material %s: %w", existing.ID, err)
			}
			result.MaterialsUpdated++
			continue
		}

		material := &model.Material{
			Title:           strings.TrimSpace(item.Title),
			Description:     strings.TrimSpace(item.Description),
			Tags:            tags,
			FileURL:         item.FileURL,
			FileType:        item.FileType,
			ContributorID:   item.ContributorID,
			ContributorName: item.ContributorName,
			PublishedBy:     "seed",
		}
		if material.ContributorID == "" {
			material.ContributorID = "seed"
		}
		if err := s.materials.Create(ctx, material); err != nil {
			return result, fmt.Errorf("create material %s: %w", item.FileURL, err)
		}
		result.MaterialsCreated++
	}

	if result.MaterialsCreated+result.MaterialsUpdated > 0 {
		invalidateCatalog(ctx, s.cache)
	}
	s.logger.Info("seed applied",
		zap.Int("admins_added", result.AdminsAdded),
		zap.Int("materials_created", result.MaterialsCreated),
		zap.Int("materials_updated", result.MaterialsUpdated),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// LoadSeedData reads a seed document from a local path or an http(s) URL.
func LoadSeedData(ctx context.Context, source string, client *http.Client) (*SeedData, error) {
	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build seed request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch seed data: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open seed file: %w", err)
		}
		body = f
	}
	defer body.Close()

	var data SeedData
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
