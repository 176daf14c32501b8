package auth

import (
	"context"
	"strings"
	"time"

	"nerd/internal/cache"
	"nerd/internal/model"
)

const adminCacheTTL = 5 * time.Minute

// AdminLookup answers whether a normalized email key is on the admin roster.
type AdminLookup interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// RoleResolver is the one place admin and super-admin status is decided.
type RoleResolver struct {
	superAdminEmail string
	admins          AdminLookup
	cache           *cache.Client
}

// NewRoleResolver creates a resolver. cache may be nil.
func NewRoleResolver(superAdminEmail string, admins AdminLookup, cache *cache.Client) *RoleResolver {
	return &RoleResolver{
		superAdminEmail: strings.ToLower(strings.TrimSpace(superAdminEmail)),
		admins:          admins,
		cache:           cache,
	}
}

// IsSuperAdmin reports whether email is the configured super-admin.
func (r *RoleResolver) IsSuperAdmin(email string) bool {
	return r.superAdminEmail != "" && strings.ToLower(strings.TrimSpace(email)) == r.superAdminEmail
}

// IsAdmin reports whether email is the super-admin or on the roster.
func (r *RoleResolver) IsAdmin(ctx context.Context, email string) (bool, error) {
	if r.IsSuperAdmin(email) {
		return true, nil
	}
	key := model.NormalizeEmailKey(email)
	if key == "" {
		return false, nil
	}

	if data, _ := r.cache.Get(ctx, adminCacheKey(key)); data != nil {
		return string(data) == "1", nil
	}

	found, err := r.admins.Exists(ctx, key)
	if err != nil {
		return false, err
	}

	flag := []byte("0")
	if found {
		flag = []byte("1")
	}
	_ = r.cache.Set(ctx, adminCacheKey(key), flag, adminCacheTTL)
	return found, nil
}

// Resolve builds the Principal for an authenticated identity.
func (r *RoleResolver) Resolve(ctx context.Context, identity Identity, tokenID string) (*Principal, error) {
	isAdmin, err := r.IsAdmin(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	return &Principal{
		Identity:     identity,
		TokenID:      tokenID,
		IsAdmin:      isAdmin,
		IsSuperAdmin: r.IsSuperAdmin(identity.Email),
	}, nil
}

// Forget drops the cached roster answer for email.
func (r *RoleResolver) Forget(ctx context.Context, email string) {
	_ = r.cache.Delete(ctx, adminCacheKey(model.NormalizeEmailKey(email)))
}

func adminCacheKey(key string) string {
	return "admin:" + key
}
