// Package auth HTTP handlers. The handlers decode requests, delegate to the
// AuthService, and translate its errors into status codes through the
// apperror helpers.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/collabogames/collabo-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleToken handles POST /auth/token. Credentials arrive as form fields
// (standard OAuth2 password grant shape: username, password); the response
// is {access_token, token_type: "bearer"} or a uniform 401.
func (h *Handlers) HandleToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid form body", err))
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if username == "" || password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), username, password)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleRegister handles POST /auth/register. The request body is JSON with
// name, password, confirm_password, and an optional list of categories.
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

// HandleValidateToken handles GET /auth/validate-token. It runs behind the
// session gate, so reaching it at all means the token checked out and its
// subject resolved; the handler just reports that back.
func (h *Handlers) HandleValidateToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("no authenticated principal in context", nil))
			return
		}

		writeJSON(w, http.StatusOK, ValidateTokenResponse{
			Valid:    true,
			Username: principal.Name,
		})
	}
}

// writeJSON serializes data to JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into a standardized apperror response.
// Errors that are not AppErrors are wrapped as generic internal errors so
// nothing leaks to the client unformatted.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}

// WriteJSON exposes the JSON response helper to the other handler packages,
// mirroring how WriteError is shared.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}
