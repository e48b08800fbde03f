package domain

import "time"

// RefreshToken is the server-side record of a long-lived opaque
// credential. Only the SHA-256 hash of the token is stored; the raw
// value exists solely in the login/refresh response. Rows are replaced,
// never mutated: issuing a new token deletes the user's prior ones.
type RefreshToken struct {
	TokenHash string    `db:"token_hash"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Expired reports whether the token is past its expiry at the given time.
func (t RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
