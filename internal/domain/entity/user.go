// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user in the marketplace.
// Roles form a closed set: a user is either a farmer (sells crops)
// or a buyer (contracts crops).
type UserRole string

const (
	UserRoleFarmer UserRole = "farmer"
	UserRoleBuyer  UserRole = "buyer"
)

// IsValidUserRole reports whether the given role is a known role.
func IsValidUserRole(role UserRole) bool {
	return role == UserRoleFarmer || role == UserRoleBuyer
}

// Location holds a user's address details.
type Location struct {
	Village  string
	District string
	State    string
	Pincode  string
}

// BankDetails holds a user's payout account information.
type BankDetails struct {
	AccountHolder string
	AccountNumber string
	IFSC          string
	BankName      string
}

// User represents an account in the FarmLink marketplace.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	Role         UserRole
	Location     Location
	BankDetails  BankDetails
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with the given role.
func NewUser(email, name, phone, passwordHash string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
