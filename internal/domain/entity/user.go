// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Customers accumulate loyalty points on it.
type User struct {
	ID        uuid.UUID `json:"id"`        // Issued by the identity provider on sign-up.
	Email     string    `json:"email"`     // Login identifier.
	FullName  string    `json:"full_name"` // Display name, may be empty.
	Points    int       `json:"points"`    // Loyalty balance. Never negative.
	Role      Role      `json:"role"`      // Stored role tag; empty is read as RoleCustomer.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveRole returns the stored role, defaulting to customer when absent.
func (u *User) EffectiveRole() Role {
	if u == nil || !u.Role.IsValid() {
		return RoleCustomer
	}

	return u.Role
}
