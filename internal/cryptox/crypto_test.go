package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPassword_Roundtrip(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	digest := HashPassword([]byte("s3cret"), salt)

	assert.True(t, VerifyPassword([]byte("s3cret"), salt, digest))
	assert.False(t, VerifyPassword([]byte("wrong"), salt, digest))
}

func TestHashPassword_SaltMatters(t *testing.T) {
	a := HashPassword([]byte("s3cret"), []byte("salt-a-salt-a-salt-a-salt-a-salt"))
	b := HashPassword([]byte("s3cret"), []byte("salt-b-salt-b-salt-b-salt-b-salt"))
	assert.NotEqual(t, a, b)
}

func TestHashPassword_NeverPlaintext(t *testing.T) {
	digest := HashPassword([]byte("s3cret"), []byte("0123456789abcdef0123456789abcdef"))
	assert.NotContains(t, string(digest), "s3cret")
	assert.Len(t, digest, 32)
}
