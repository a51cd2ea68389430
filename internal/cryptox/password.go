// Package cryptox holds the password hashing used by the account directory.
// Passwords are never stored verbatim: each user gets a random salt and the
// argon2id key derived from (password, salt) is persisted instead.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32

	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
)

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, KeySize)
}

// HashPassword generates a fresh salt and returns (hash, salt).
func HashPassword(password []byte) (hash []byte, salt []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return DeriveKey(password, salt), salt
}

// VerifyPassword reports whether password matches hash under salt.
// The comparison runs in constant time.
func VerifyPassword(password []byte, salt []byte, hash []byte) bool {
	if len(hash) == 0 {
		return false
	}
	candidate := DeriveKey(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
