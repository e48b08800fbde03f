package domain

import "time"

// Claims is the validated content of an access token. It is passed
// explicitly into service calls that need the caller's identity; no
// ambient per-request globals are used.
type Claims struct {
	Subject   string // username
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
