package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashOpaqueToken generates a SHA-256 hash of an opaque token (refresh or
// password-reset). Only the hash is persisted, so a leaked row cannot be
// replayed as a credential.
func HashOpaqueToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareOpaqueTokenHash compares a raw token string with a stored
// SHA-256 hash.
func CompareOpaqueTokenHash(token string, storedHash string) bool {
	return HashOpaqueToken(token) == storedHash
}
