package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher{}

	// Known vector so stored digests stay compatible across versions.
	digest := h.Hash("password123")
	assert.Equal(t, "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f", digest)
	assert.Equal(t, digest, h.Hash("password123"))
}

func TestSHA256Hasher_Verify(t *testing.T) {
	h := SHA256Hasher{}
	digest := h.Hash("password123")

	assert.True(t, h.Verify("password123", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("password123", "not-a-digest"))
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := BcryptHasher{}
	digest := h.Hash("password123")

	require.NotEmpty(t, digest)
	assert.True(t, h.Verify("password123", digest))
	assert.False(t, h.Verify("wrong", digest))
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := BcryptHasher{}
	assert.NotEqual(t, h.Hash("password123"), h.Hash("password123"))
}

func TestHasherFor(t *testing.T) {
	assert.IsType(t, BcryptHasher{}, HasherFor("bcrypt"))
	assert.IsType(t, SHA256Hasher{}, HasherFor("sha256"))
	assert.IsType(t, SHA256Hasher{}, HasherFor(""))
}
