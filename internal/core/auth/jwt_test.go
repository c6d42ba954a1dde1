package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer() *JWTer {
	return &JWTer{
		Secret: []byte("test-secret-at-least-16-chars"),
		Issuer: "user-api-test",
		TTL:    time.Hour,
	}
}

func TestJWTer_RoundTrip(t *testing.T) {
	j := newTestJWTer()

	token, err := j.Issue(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestJWTer_Expired(t *testing.T) {
	j := newTestJWTer()
	j.TTL = -time.Minute

	token, err := j.Issue(1, "a@b.com")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTer_Tampered(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue(1, "a@b.com")
	require.NoError(t, err)

	tampered := token[:len(token)-3] + "xxx"
	_, err = j.Parse(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTer_WrongSecret(t *testing.T) {
	j := newTestJWTer()
	other := &JWTer{Secret: []byte("another-secret-entirely!!"), TTL: time.Hour}

	token, err := other.Issue(1, "a@b.com")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTer_Garbage(t *testing.T) {
	j := newTestJWTer()

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := j.Parse(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}
