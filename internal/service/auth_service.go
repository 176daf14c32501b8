package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"nerd/internal/auth"
	apperrors "nerd/internal/errors"
	"nerd/internal/model"
	"nerd/internal/repository"
)

// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
var ErrInvalidRefreshToken = fmt.Errorf("%w: invalid or expired refresh token", apperrors.ErrUnauthorized)

// SignInResult is what a client needs after a successful sign-in. When the
// identity has no profile yet, Registration carries the claims for the
// signup form.
type SignInResult struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Principal    *auth.Principal `json:"principal"`
	Registered   bool            `json:"registered"`
	User         *model.User     `json:"user,omitempty"`
	Registration *auth.Identity  `json:"registration,omitempty"`
}

// AuthService handles authentication operations.
type AuthService interface {
	SignIn(ctx context.Context, idToken string) (*SignInResult, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string, access *auth.Claims) error
}

type authService struct {
	verifier   auth.IdentityVerifier
	users      repository.UserRepository
	roles      *auth.RoleResolver
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	verifier auth.IdentityVerifier,
	users repository.UserRepository,
	roles *auth.RoleResolver,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	logger *zap.Logger,
) AuthService {
	return &authService{
		verifier:   verifier,
		users:      users,
		roles:      roles,
		jwtService: jwtService,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// SignIn verifies the identity provider token, looks up the profile and
// issues an access and refresh token pair.
func (s *authService) SignIn(ctx context.Context, idToken string) (*SignInResult, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: id_token is required", apperrors.ErrValidation)
	}

	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, identity.UID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("look up profile: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(*identity)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(*identity)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, *identity, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	principal, err := s.roles.Resolve(ctx, *identity, "")
	if err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}

	result := &SignInResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Principal:    principal,
		Registered:   user != nil,
		User:         user,
	}
	if user == nil {
		result.Registration = identity
	}

	s.logger.Info("signed in",
		zap.String("uid", identity.UID),
		zap.Bool("registered", result.Registered),
		zap.Bool("admin", principal.IsAdmin))
	return result, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" || !claims.IsRefresh() {
		return "", ErrInvalidRefreshToken
	}

	stored, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	if stored.UID != claims.UserID || stored.Email != claims.Email {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(*stored)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates the refresh token and blacklists the current access
// token until it would have expired anyway. Abandoning a registration is
// the same call.
func (s *authService) Logout(ctx context.Context, refreshToken string, access *auth.Claims) error {
	if refreshToken != "" {
		tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
		if err != nil {
			return ErrInvalidRefreshToken
		}
		if err := s.tokenStore.DeleteRefreshToken(ctx, tokenID); err != nil {
			return fmt.Errorf("delete refresh token: %w", err)
		}
	}

	if access != nil && access.ID != "" {
		if err := s.tokenStore.BlacklistAccessToken(ctx, access.ID, access.RemainingTTL()); err != nil {
			return fmt.Errorf("blacklist access token: %w", err)
		}
	}
	return nil
}
