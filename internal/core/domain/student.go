package domain

import "time"

// Student is an entry in the student registry.
type Student struct {
	StudentID string    `json:"studentID"`
	Code      string    `json:"code" db:"code"`
	FullName  string    `json:"fullName" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Major     string    `json:"major" db:"major"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
