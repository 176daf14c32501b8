package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenStore_WithoutRedis(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	assert.NoError(t, store.StoreRefreshToken(ctx, "id", Identity{UID: "u"}, time.Minute))
	_, err := store.GetRefreshToken(ctx, "id")
	assert.Error(t, err, "nothing is persisted without redis")

	blacklisted, err := store.IsAccessTokenBlacklisted(ctx, "id")
	assert.NoError(t, err)
	assert.False(t, blacklisted)
	assert.NoError(t, store.BlacklistAccessToken(ctx, "id", 0))
	assert.NoError(t, store.DeleteRefreshToken(ctx, "id"))
}
