package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdminLookup struct {
	mock.Mock
}

func (m *MockAdminLookup) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func TestRoleResolver_SuperAdminBypassesRoster(t *testing.T) {
	lookup := new(MockAdminLookup)
	resolver := NewRoleResolver("Boss@Nerd.dev", lookup, nil)

	p, err := resolver.Resolve(context.Background(), Identity{UID: "u", Email: "boss@nerd.dev"}, "tok")
	require.NoError(t, err)
	assert.True(t, p.IsAdmin)
	assert.True(t, p.IsSuperAdmin)
	assert.Equal(t, "tok", p.TokenID)
	lookup.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestRoleResolver_RosterMember(t *testing.T) {
	lookup := new(MockAdminLookup)
	lookup.On("Exists", mock.Anything, "a_b@x_com").Return(true, nil)
	resolver := NewRoleResolver("boss@nerd.dev", lookup, nil)

	p, err := resolver.Resolve(context.Background(), Identity{UID: "u", Email: "a.b@x.com"}, "")
	require.NoError(t, err)
	assert.True(t, p.IsAdmin)
	assert.False(t, p.IsSuperAdmin)
	lookup.AssertExpectations(t)
}

func TestRoleResolver_PlainUser(t *testing.T) {
	lookup := new(MockAdminLookup)
	lookup.On("Exists", mock.Anything, "joe@x_com").Return(false, nil)
	resolver := NewRoleResolver("boss@nerd.dev", lookup, nil)

	isAdmin, err := resolver.IsAdmin(context.Background(), "joe@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestRoleResolver_LookupFailure(t *testing.T) {
	lookup := new(MockAdminLookup)
	lookup.On("Exists", mock.Anything, "joe@x_com").Return(false, errors.New("db down"))
	resolver := NewRoleResolver("boss@nerd.dev", lookup, nil)

	_, err := resolver.Resolve(context.Background(), Identity{Email: "joe@x.com"}, "")
	assert.Error(t, err)
}

func TestRoleResolver_EmptySuperAdminNeverMatches(t *testing.T) {
	resolver := NewRoleResolver("", new(MockAdminLookup), nil)
	assert.False(t, resolver.IsSuperAdmin(""))
}
