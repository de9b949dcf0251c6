package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/collabogames/collabo-go/config"
)

// Token validation errors. Validate wraps the jwt library's own parse
// failures; these cover the checks layered on top.
var (
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenMissingSubject = errors.New("token subject claim is missing")
)

// TokenIssuer mints and validates HS256 bearer tokens asserting
// {sub: username, exp: now + ttl}. Tokens are not persisted anywhere:
// validity is determined solely by signature and expiry, and there is no
// revocation before natural expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer from the auth configuration.
func NewTokenIssuer(cfg *config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.SecretKey),
		ttl:    cfg.AccessTokenDuration,
	}
}

// Issue creates a signed token for the subject with the configured TTL.
func (i *TokenIssuer) Issue(subject string) (string, error) {
	return i.IssueWithTTL(subject, i.ttl)
}

// IssueWithTTL creates a signed token for the subject with an explicit TTL.
func (i *TokenIssuer) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate parses the token, verifies the signature and expiry, and returns
// the subject. It fails on malformed encoding, an unexpected signing method,
// a signature mismatch, an expired timestamp, or a missing subject claim.
// It never consults the user store; resolving the subject to a current user
// is the session gate's job.
func (i *TokenIssuer) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", ErrTokenMissingSubject
	}
	return claims.Subject, nil
}
