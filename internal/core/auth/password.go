package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hides the digest algorithm from callers so storage
// can move to a salted scheme without touching the service layer.
type PasswordHasher interface {
	Hash(plaintext string) string
	Verify(plaintext, digest string) bool
}

// SHA256Hasher is the template default: unsalted hex SHA-256.
// Deterministic, which keeps fixtures simple, but not what you want
// for real credential storage. Swap in BcryptHasher for that.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func (h SHA256Hasher) Verify(plaintext, digest string) bool {
	computed := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// BcryptHasher produces salted digests with the default cost.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	return string(b)
}

func (BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// HasherFor returns the hasher named in config; unknown names fall
// back to the sha256 default.
func HasherFor(algorithm string) PasswordHasher {
	if algorithm == "bcrypt" {
		return BcryptHasher{}
	}
	return SHA256Hasher{}
}
