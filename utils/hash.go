package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the hashing strategy applied to account passwords.
// BcryptHasher is the default; LegacyHasher pins the old unsalted SHA-256
// scheme for installations that still carry hashes produced by it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// LegacyHasher is the old unsalted SHA-256 hex scheme. No salt, no work
// factor. Kept only so existing password rows stay verifiable.
type LegacyHasher struct{}

func (LegacyHasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h LegacyHasher) Compare(hash, password string) bool {
	computed, _ := h.Hash(password)
	return computed == hash
}
