// Package users exposes the protected user routes: the current principal's
// profile and the two tally mutations (points and answer count). All routes
// sit behind the auth session gate, which supplies the principal via the
// request context with the credential already stripped.
package users

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/collabogames/collabo-go/apperror"
	"github.com/collabogames/collabo-go/auth"
)

// UserHandlers provides HTTP handlers for user tallies and profile access.
type UserHandlers struct {
	store *auth.UserStore
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(store *auth.UserStore) *UserHandlers {
	return &UserHandlers{store: store}
}

// HandleMe handles GET /users/me, returning the authenticated principal.
// The credential field is already redacted by the session gate and excluded
// from serialization by the model's struct tag.
func (h *UserHandlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authenticated principal in context", nil))
			return
		}

		auth.WriteJSON(w, http.StatusOK, principal)
	}
}

// HandleAddPoints handles POST /users/points?points=N. The delta may be
// negative; the store applies it atomically.
func (h *UserHandlers) HandleAddPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authenticated principal in context", nil))
			return
		}

		pointsParam := r.URL.Query().Get("points")
		if pointsParam == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("points query parameter is required", nil))
			return
		}
		points, err := strconv.Atoi(pointsParam)
		if err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("points must be an integer", err))
			return
		}

		if err := h.store.AddPoints(r.Context(), principal.UserID, points); err != nil {
			auth.WriteError(w, r, apperror.NewInternalError("Error updating points", err))
			return
		}

		auth.WriteJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Added %d points to user %s", points, principal.Name),
		})
	}
}

// HandleIncrementAnswers handles POST /users/answers, bumping the
// principal's answer count by one.
func (h *UserHandlers) HandleIncrementAnswers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authenticated principal in context", nil))
			return
		}

		if err := h.store.IncrementAnswers(r.Context(), principal.UserID); err != nil {
			auth.WriteError(w, r, apperror.NewInternalError("Error updating answer count", err))
			return
		}

		auth.WriteJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Incremented answer count for user %s", principal.Name),
		})
	}
}
