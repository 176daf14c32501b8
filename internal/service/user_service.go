package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"nerd/internal/auth"
	"nerd/internal/cache"
	apperrors "nerd/internal/errors"
	"nerd/internal/events"
	"nerd/internal/model"
	"nerd/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// RegistrationInput is the signup form. Email, avatar and id come from the
// signed-in identity.
type RegistrationInput struct {
	Name        string
	Gender      string
	DateOfBirth string // YYYY-MM-DD
	College     string
	Phone       *string
}

// UserService exposes domain operations.
type UserService interface {
	Register(ctx context.Context, identity auth.Identity, in RegistrationInput) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	repo   repository.UserRepository
	cache  *cache.Client
	events events.Publisher
	logger *zap.Logger
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client, publisher events.Publisher, logger *zap.Logger) UserService {
	return &userService{repo: repo, cache: cache, events: publisher, logger: logger}
}

func (s *userService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func (s *userService) Register(ctx context.Context, identity auth.Identity, in RegistrationInput) (*model.User, error) {
	user := &model.User{
		ID:          identity.UID,
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(identity.Email),
		Avatar:      identity.Avatar,
		College:     strings.TrimSpace(in.College),
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
		Gender:      strings.TrimSpace(in.Gender),
	}
	if in.Phone != nil {
		if phone := strings.TrimSpace(*in.Phone); phone != "" {
			user.Phone = &phone
		}
	}
	if err := validateRegistration(user); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	s.events.Publish(ctx, events.Change{Collection: events.CollectionUsers, ID: user.ID, Action: events.ActionCreated})
	s.logger.Info("user registered", zap.String("uid", user.ID))
	return user, nil
}

func validateRegistration(u *model.User) error {
	switch {
	case u.ID == "":
		return fmt.Errorf("%w: identity has no uid", apperrors.ErrValidation)
	case u.Email == "":
		return fmt.Errorf("%w: identity has no email", apperrors.ErrValidation)
	case u.Name == "":
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	case u.Gender == "":
		return fmt.Errorf("%w: gender is required", apperrors.ErrValidation)
	case u.College == "":
		return fmt.Errorf("%w: college is required", apperrors.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", u.DateOfBirth); err != nil {
		return fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	return nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.events.Publish(ctx, events.Change{Collection: events.CollectionUsers, ID: id, Action: events.ActionDeleted})
	s.logger.Info("user deleted", zap.String("uid", id))
	return nil
}
