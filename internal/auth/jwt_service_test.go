package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	identity := Identity{UID: "uid-1", Email: "a@x.com", Name: "Ada"}

	access, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, identity, claims.Identity())
	assert.InDelta(t, AccessTokenExpiry.Seconds(), claims.RemainingTTL().Seconds(), 5)

	assert.True(t, claims.IsAccess())
	assert.False(t, claims.IsRefresh())

	tokenID, refresh, err := svc.GenerateRefreshToken(identity)
	require.NoError(t, err)
	extracted, err := svc.ExtractTokenID(refresh)
	require.NoError(t, err)
	assert.Equal(t, tokenID, extracted)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefresh())
	assert.False(t, refreshClaims.IsAccess())
}

func TestClaims_UntypedTokenIsNeither(t *testing.T) {
	claims := &Claims{UserID: "u"}
	assert.False(t, claims.IsAccess())
	assert.False(t, claims.IsRefresh())
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("other").GenerateAccessToken(Identity{UID: "u"})
	require.NoError(t, err)

	_, err = NewJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	claims := &Claims{
		UserID: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
	assert.Equal(t, time.Duration(0), claims.RemainingTTL())
}
