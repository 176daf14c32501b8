package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "nerd/internal/errors"
)

type jwksFixture struct {
	key     *rsa.PrivateKey
	server  *httptest.Server
	fetches atomic.Int32
}

func newJWKSFixture(t *testing.T) *jwksFixture {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &jwksFixture{key: key}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.fetches.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"keys": []map[string]string{{
				"kid": "kid-1",
				"kty": "RSA",
				"alg": "RS256",
				"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
			}},
		})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *jwksFixture) sign(t *testing.T, kid string, claims googleClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	raw, err := token.SignedString(f.key)
	require.NoError(t, err)
	return raw
}

func validGoogleClaims() googleClaims {
	return googleClaims{
		Email:         "ada@x.com",
		EmailVerified: true,
		Name:          "Ada",
		Picture:       "https://img/ada.png",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Subject:   "google-uid-1",
			Audience:  jwt.ClaimStrings{"client-123"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func newTestVerifier(t *testing.T, clientID string, f *jwksFixture) *GoogleVerifier {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	v, err := NewGoogleVerifier(ctx, clientID, f.server.URL)
	require.NoError(t, err)
	return v
}

func TestGoogleVerifier_Valid(t *testing.T) {
	f := newJWKSFixture(t)
	v := newTestVerifier(t, "client-123", f)

	identity, err := v.Verify(context.Background(), f.sign(t, "kid-1", validGoogleClaims()))
	require.NoError(t, err)
	assert.Equal(t, &Identity{UID: "google-uid-1", Name: "Ada", Email: "ada@x.com", Avatar: "https://img/ada.png"}, identity)

	// known key ids are served from the stored key set
	_, err = v.Verify(context.Background(), f.sign(t, "kid-1", validGoogleClaims()))
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.fetches.Load())
}

func TestGoogleVerifier_Rejects(t *testing.T) {
	f := newJWKSFixture(t)

	tests := []struct {
		name   string
		kid    string
		mutate func(c *googleClaims)
	}{
		{"wrong audience", "kid-1", func(c *googleClaims) { c.Audience = jwt.ClaimStrings{"someone-else"} }},
		{"wrong issuer", "kid-1", func(c *googleClaims) { c.Issuer = "https://evil.example" }},
		{"expired", "kid-1", func(c *googleClaims) { c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour)) }},
		{"unverified email", "kid-1", func(c *googleClaims) { c.EmailVerified = false }},
		{"missing subject", "kid-1", func(c *googleClaims) { c.Subject = "" }},
		{"unknown key id", "kid-2", func(c *googleClaims) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVerifier(t, "client-123", f)
			claims := validGoogleClaims()
			tt.mutate(&claims)

			_, err := v.Verify(context.Background(), f.sign(t, tt.kid, claims))
			assert.ErrorIs(t, err, apperrors.ErrInvalidIDToken)
		})
	}
}

func TestGoogleVerifier_RejectsGarbage(t *testing.T) {
	f := newJWKSFixture(t)
	v := newTestVerifier(t, "", f)

	_, err := v.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidIDToken)
}

func TestGoogleVerifier_UnknownKeyIDRefreshIsRateLimited(t *testing.T) {
	f := newJWKSFixture(t)
	v := newTestVerifier(t, "client-123", f)

	for i := 0; i < 5; i++ {
		_, err := v.Verify(context.Background(), f.sign(t, "kid-rotated", validGoogleClaims()))
		assert.ErrorIs(t, err, apperrors.ErrInvalidIDToken)
	}
	// initial load plus at most one refresh for the unknown key id
	assert.LessOrEqual(t, f.fetches.Load(), int32(2))
}
