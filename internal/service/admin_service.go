package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nerd/internal/auth"
	apperrors "nerd/internal/errors"
	"nerd/internal/events"
	"nerd/internal/model"
	"nerd/internal/repository"
)

// AdminService manages the admin roster. Callers are expected to be the
// super-admin; the router enforces that.
type AdminService interface {
	AddAdmin(ctx context.Context, email string) (string, error)
	SearchAdmin(ctx context.Context, email string) (bool, error)
	RemoveAdmin(ctx context.Context, email string) error
	ListAdmins(ctx context.Context) ([]model.AdminEntry, error)
}

type adminService struct {
	repo   repository.AdminRepository
	roles  *auth.RoleResolver
	events events.Publisher
	logger *zap.Logger
}

// NewAdminService creates a new roster service.
func NewAdminService(repo repository.AdminRepository, roles *auth.RoleResolver, publisher events.Publisher, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, roles: roles, events: publisher, logger: logger}
}

func rosterKey(email string) (string, error) {
	key := model.NormalizeEmailKey(email)
	if key == "" {
		return "", fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	return key, nil
}

// AddAdmin grants admin rights. Adding an existing admin is a no-op.
func (s *adminService) AddAdmin(ctx context.Context, email string) (string, error) {
	key, err := rosterKey(email)
	if err != nil {
		return "", err
	}
	if err := s.repo.Add(ctx, key); err != nil {
		return "", fmt.Errorf("add admin: %w", err)
	}
	s.roles.Forget(ctx, email)
	s.events.Publish(ctx, events.Change{Collection: events.CollectionAdmins, ID: key, Action: events.ActionCreated})
	s.logger.Info("admin added", zap.String("key", key))
	return key, nil
}

// SearchAdmin reports whether email is on the roster.
func (s *adminService) SearchAdmin(ctx context.Context, email string) (bool, error) {
	key, err := rosterKey(email)
	if err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, key)
}

// RemoveAdmin revokes admin rights. Removing a missing admin is a no-op.
func (s *adminService) RemoveAdmin(ctx context.Context, email string) error {
	key, err := rosterKey(email)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, key); err != nil {
		return fmt.Errorf("remove admin: %w", err)
	}
	s.roles.Forget(ctx, email)
	s.events.Publish(ctx, events.Change{Collection: events.CollectionAdmins, ID: key, Action: events.ActionDeleted})
	s.logger.Info("admin removed", zap.String("key", key))
	return nil
}

func (s *adminService) ListAdmins(ctx context.Context) ([]model.AdminEntry, error) {
	return s.repo.List(ctx)
}
