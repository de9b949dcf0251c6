package auth

import "context"

// contextKey is a private type for context keys so no other package can
// collide with them.
type contextKey string

const principalContextKey contextKey = "auth_principal"

// NewContextWithPrincipal returns a child context carrying the authenticated
// principal. The session gate middleware installs it; handlers read it back
// with PrincipalFromContext.
func NewContextWithPrincipal(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, principalContextKey, user)
}

// PrincipalFromContext extracts the authenticated principal from the context.
// The second return value reports whether a principal was present.
func PrincipalFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(principalContextKey).(*User)
	return user, ok
}
