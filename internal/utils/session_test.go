package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, exp, err := NewSessionToken("secret", 42, 60)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), exp, 5*time.Second)

	uid, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	require.Equal(t, int64(42), uid)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, _, err := NewSessionToken("secret", 42, 60)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().UTC().Add(-time.Minute).Unix(),
		"iat": time.Now().UTC().Add(-2 * time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", raw)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("secret", "not-a-token")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenBadSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "zero",
		"exp": time.Now().UTC().Add(time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", raw)
	require.ErrorIs(t, err, ErrInvalidSession)
}
