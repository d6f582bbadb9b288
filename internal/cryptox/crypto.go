// Package cryptox implements the password digest used by the credential
// store: argon2id over a per-user random salt, compared in constant time.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	digestLen    = 32
)

// HashPassword derives a one-way digest of password under salt.
// The plaintext is never persisted.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, digestLen)
}

// VerifyPassword recomputes the digest for a candidate password and compares
// it against the stored one without leaking timing information.
func VerifyPassword(password, salt, digest []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}
