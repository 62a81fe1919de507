package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and verifying the signed
// bearer tokens that identify API callers.
//
// Tokens are self-contained: validity is proven by signature and expiry
// alone, with no server-side session state and no revocation list. A token
// stays valid until it expires regardless of later account changes.
type TokenService interface {
	// IssueToken creates a signed token for the given subject (username).
	// The expiry is always the service's fixed lifetime from now; it is not
	// configurable per call. Returns an error for an empty subject or if
	// signing fails.
	IssueToken(ctx context.Context, subject string) (string, error)

	// VerifyToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken when the token is past its expiry, and
	// ErrInvalidToken for every other failure: bad signature, malformed
	// token, or a missing subject claim.
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a token.
type Claims struct {
	// Subject is the username the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
