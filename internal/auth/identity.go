package auth

import "context"

// Identity is what the identity provider tells us about a signed-in person.
type Identity struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// IdentityVerifier turns a provider-issued ID token into an Identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*Identity, error)
}

// Principal is the caller of a request after role resolution.
type Principal struct {
	Identity
	TokenID      string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
	IsSuperAdmin bool   `json:"is_super_admin"`
}
