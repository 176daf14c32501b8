package auth

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	apperrors "nerd/internal/errors"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

// GoogleVerifier checks Google Sign-In ID tokens against the published JWKS.
// The key set is refreshed in the background until the constructor's ctx is
// done; unknown key ids trigger a rate-limited refresh.
type GoogleVerifier struct {
	clientID string
	keys     keyfunc.Keyfunc
}

var _ IdentityVerifier = (*GoogleVerifier)(nil)

// NewGoogleVerifier creates a verifier. An empty clientID skips the audience check.
func NewGoogleVerifier(ctx context.Context, clientID, certsURL string) (*GoogleVerifier, error) {
	keys, err := keyfunc.NewDefaultCtx(ctx, []string{certsURL})
	if err != nil {
		return nil, fmt.Errorf("load google signing keys: %w", err)
	}
	return &GoogleVerifier{clientID: clientID, keys: keys}, nil
}

// Verify validates signature, expiry, issuer and audience and returns the identity.
func (v *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (*Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.clientID != "" {
		opts = append(opts, jwt.WithAudience(v.clientID))
	}

	token, err := jwt.ParseWithClaims(rawIDToken, &googleClaims{}, v.keys.KeyfuncCtx(ctx), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidIDToken, err)
	}

	claims, ok := token.Claims.(*googleClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidIDToken
	}
	if !googleIssuers[claims.Issuer] {
		return nil, fmt.Errorf("%w: unexpected issuer %q", apperrors.ErrInvalidIDToken, claims.Issuer)
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: missing subject or email", apperrors.ErrInvalidIDToken)
	}
	if !claims.EmailVerified {
		return nil, fmt.Errorf("%w: email not verified", apperrors.ErrInvalidIDToken)
	}

	return &Identity{
		UID:    claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
		Avatar: claims.Picture,
	}, nil
}
