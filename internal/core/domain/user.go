package domain

import "time"

// Role is a flat enumeration gating privileged operations.
// There is no hierarchy; privileged endpoints state their acceptable
// role set explicitly.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account in the identity subsystem.
// PasswordHash and the reset columns never leave the service layer.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	FullName     string `json:"fullName" db:"full_name"`
	Role         Role   `json:"role" db:"role"`
	IsActive     bool   `json:"isActive" db:"is_active"`

	// Password reset fields. Both nil or both set; redemption clears
	// them atomically with the password write.
	ResetTokenHash   *string    `json:"-" db:"reset_token_hash"`
	ResetTokenExpiry *time.Time `json:"-" db:"reset_token_expiry"`

	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
}

func (u *User) GetUserID() string   { return u.UserID }
func (u *User) GetUsername() string { return u.Username }
func (u *User) GetEmail() string    { return u.Email }
func (u *User) GetFullName() string { return u.FullName }
