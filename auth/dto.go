// Package auth request/response payloads. These mirror the canonical API
// contract: registration takes a password confirmation and an optional list
// of category names, token responses carry the standard bearer fields.
package auth

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Name            string   `json:"name" example:"alice"`
	Password        string   `json:"password" example:"strongpassword123"`
	ConfirmPassword string   `json:"confirm_password" example:"strongpassword123"`
	Categories      []string `json:"categories,omitempty" example:"デザイン部,音楽"`
}

// RegisterResponse is returned on successful registration. It includes an
// initial access token so a client can proceed without a separate login.
type RegisterResponse struct {
	UserID      int64  `json:"user_id" example:"1"`
	Message     string `json:"message" example:"User successfully registered"`
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

// ValidateTokenResponse is returned by the token validation endpoint.
type ValidateTokenResponse struct {
	Valid    bool   `json:"valid" example:"true"`
	Username string `json:"username" example:"alice"`
}
