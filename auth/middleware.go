package auth

import (
	"net/http"
	"strings"

	"github.com/collabogames/collabo-go/apperror"
)

// RequireAuth returns middleware that gates protected routes. It extracts
// the bearer token from the Authorization header, runs it through the
// session gate, and stores the resulting principal in the request context.
// Any failure terminates the request with 401; there are no intermediate or
// retry states.
func RequireAuth(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("Authorization header is missing", nil))
				return
			}

			// The header must be in the form "Bearer {token}".
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("Authorization header format must be Bearer {token}", nil))
				return
			}

			principal, err := service.Authenticate(r.Context(), parts[1])
			if err != nil {
				WriteError(w, r, err)
				return
			}

			ctx := NewContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
