package auth

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/collabogames/collabo-go/apperror"
)

const (
	minNameLength = 2
	maxNameLength = 50
)

// AuthService composes the user store, credential verifier, and token issuer
// into the registration, login, and session validation flows. All
// dependencies are injected at construction; the service holds no mutable
// state of its own.
type AuthService struct {
	store    *UserStore
	verifier Verifier
	tokens   *TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *UserStore, verifier Verifier, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		store:    store,
		verifier: verifier,
		tokens:   tokens,
	}
}

// Register creates a new user and returns the assigned ID along with an
// initial access token. The name is pre-checked against the store so a taken
// name surfaces as a clean client error rather than a storage-level
// constraint violation.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.Name == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, apperror.NewBadRequestError("name, password, and confirm_password are required", nil)
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperror.NewBadRequestError("passwords do not match", nil)
	}
	// Length is counted in runes, not bytes: names are typically Japanese.
	if n := utf8.RuneCountInString(req.Name); n < minNameLength || n > maxNameLength {
		return nil, apperror.NewValidationError("name must be between 2 and 50 characters", nil)
	}

	existing, err := s.store.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewBadRequestError("username already registered", nil)
	}

	credential, err := s.verifier.PrepareForStorage(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to prepare credential", err)
	}

	var categories *string
	if len(req.Categories) > 0 {
		joined := strings.Join(req.Categories, ",")
		categories = &joined
	}

	userID, err := s.store.Create(ctx, req.Name, credential, categories)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.Issue(req.Name)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &RegisterResponse{
		UserID:      userID,
		Message:     "User successfully registered",
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Login authenticates the username/password pair and returns a fresh access
// token. Unknown user and wrong password produce the same rejection so the
// response reveals nothing about which part was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.store.FindByName(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.verifier.Verify(password, user.Password) {
		return nil, apperror.NewAuthError("incorrect username or password", nil)
	}

	// Best-effort stamp; a failed update must not block the login.
	if err := s.store.UpdateLastLogin(ctx, user.UserID); err != nil {
		log.Printf("failed to update last login for user %d: %v", user.UserID, err)
	}

	accessToken, err := s.tokens.Issue(user.Name)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Authenticate is the session gate: it validates the bearer token, re-resolves
// the subject to a current user record, and returns the principal with the
// credential field stripped. Every failure collapses into the same
// unauthorized rejection, including a still-valid token whose subject no
// longer resolves to a user.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*User, error) {
	subject, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, apperror.NewAuthError("invalid authentication credentials", err)
	}

	user, err := s.store.FindByName(ctx, subject)
	if err != nil || user == nil {
		return nil, apperror.NewAuthError("invalid authentication credentials", err)
	}

	user.Redact()
	return user, nil
}
