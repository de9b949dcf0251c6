// Package auth contains the authentication flow: the user store, credential
// verification, token issuance and validation, and the request-time session
// gate. This file defines the User model shared across the application.
package auth

import "time"

// User represents a user record as stored in the database.
// Password holds the stored credential (a bcrypt hash, or the raw password
// in the dev-only plaintext mode); the `json:"-"` tag keeps it out of every
// serialized response as a second line of defense behind Redact.
type User struct {
	UserID      int64      `json:"user_id"`
	Name        string     `json:"name"`
	Password    string     `json:"-"`
	Categories  *string    `json:"categories,omitempty"`
	AnswerCount int        `json:"num_answer"`
	PointTotal  int        `json:"point_total"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Redact clears the stored credential. The session gate calls this before
// releasing a principal to any caller, so downstream code never sees it.
func (u *User) Redact() {
	u.Password = ""
}
