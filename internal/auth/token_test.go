package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-1", "user@test.com", RoleClient)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, RoleClient, claims.Role)

	// Verification is pure: a second pass over the same token yields the
	// same payload.
	again, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims, again)
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	issuer.ttl = -time.Minute

	token, err := issuer.Issue("user-1", "user@test.com", RoleClient)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Tampered(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-1", "user@test.com", RoleClient)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue("user-1", "user@test.com", RoleClient)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestNewTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("s", 0)
	assert.Equal(t, 24*time.Hour, issuer.TTL())
}
