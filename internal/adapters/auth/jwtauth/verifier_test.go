package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "s3cret"

func sign(t *testing.T, key string, c TokenClaims) string {
	t.Helper()
	tok, err := Sign(key, c)
	require.NoError(t, err)
	return tok
}

func TestVerify_OK(t *testing.T) {
	v := NewVerifier(secret)
	tok := sign(t, secret, TokenClaims{
		Email:       " a@b.c ",
		TenantID:    "t1",
		Permissions: []string{"animals:view_appointments"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	c, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	assert.Equal(t, "a@b.c", c.Email)
	assert.Equal(t, "t1", c.TenantID)
	assert.True(t, c.HasPermission("animals:view_appointments"))
}

func TestVerify_Rejects(t *testing.T) {
	v := NewVerifier(secret)
	valid := jwt.RegisteredClaims{Subject: "u", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	cases := map[string]string{
		"wrong key":   sign(t, "other", TokenClaims{RegisteredClaims: valid}),
		"expired":     sign(t, secret, TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}}),
		"missing sub": sign(t, secret, TokenClaims{}),
		"garbage":     "a.b.c",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewVerifier(secret).Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_NotConfigured(t *testing.T) {
	_, err := NewVerifier("").Verify(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier(secret).Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
