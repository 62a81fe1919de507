package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claydesk/flowtest-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-signing-secret-for-token-service",
		TokenLifetimeMinutes: 30,
	}
}

// newFixedClockService returns an hmacTokenService whose clock is pinned to
// the returned time and can be advanced by the test.
func newFixedClockService(t *testing.T) (*hmacTokenService, *time.Time) {
	t.Helper()
	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	impl, ok := svc.(*hmacTokenService)
	require.True(t, ok)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	impl.timeFunc = func() time.Time { return now }
	return impl, &now
}

func TestNewTokenService(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("empty secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = ""
		_, err := NewTokenService(cfg)
		assert.Error(t, err)
	})

	t.Run("non-positive lifetime", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.TokenLifetimeMinutes = 0
		_, err := NewTokenService(cfg)
		assert.Error(t, err)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFixedClockService(t)

	for _, subject := range []string{"alice", "bob", "user.with-punctuation_42"} {
		token, err := svc.IssueToken(ctx, subject)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.VerifyToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, subject, claims.Subject)
		assert.NotEmpty(t, claims.ID)
	}
}

func TestIssueTokenRejectsEmptySubject(t *testing.T) {
	svc, _ := newFixedClockService(t)
	_, err := svc.IssueToken(context.Background(), "")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	svc, now := newFixedClockService(t)
	issued := *now

	token, err := svc.IssueToken(ctx, "alice")
	require.NoError(t, err)

	// 29 minutes in: still valid.
	*now = issued.Add(29 * time.Minute)
	claims, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, issued.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())

	// 31 minutes in: expired.
	*now = issued.Add(31 * time.Minute)
	_, err = svc.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTokenRejectsMalformed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFixedClockService(t)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.VerifyToken(ctx, tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenString)
	}
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFixedClockService(t)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-completely-different-signing-secret"
	other, err := NewTokenService(otherCfg)
	require.NoError(t, err)

	token, err := other.IssueToken(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsMissingSubject(t *testing.T) {
	ctx := context.Background()
	svc, now := newFixedClockService(t)

	// Hand-roll a valid signed token with no sub claim.
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(*now),
		ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.signingKey)
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsWrongAlgorithm(t *testing.T) {
	ctx := context.Background()
	svc, now := newFixedClockService(t)

	// alg=none tokens must never verify.
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
