package domain

import "time"

// CustomerStatus is the lifecycle state of a customer record.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "ACTIVE"
	CustomerInactive  CustomerStatus = "INACTIVE"
	CustomerSuspended CustomerStatus = "SUSPENDED"
)

func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerSuspended:
		return true
	}
	return false
}

// Customer is an entry in the customer registry. CustomerCode is
// immutable after creation.
type Customer struct {
	CustomerID   string         `json:"customerID"`
	CustomerCode string         `json:"customerCode" db:"customer_code"`
	FullName     string         `json:"fullName" db:"full_name"`
	Email        string         `json:"email" db:"email"`
	Phone        string         `json:"phone" db:"phone"`
	Address      string         `json:"address" db:"address"`
	Status       CustomerStatus `json:"status" db:"status"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
}
