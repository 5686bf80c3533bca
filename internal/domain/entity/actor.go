package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// ActorKind is the resolved identity class that gates which features a client may use.
type ActorKind string

const (
	ActorGuest    ActorKind = "guest"
	ActorCustomer ActorKind = "customer"
	ActorAdmin    ActorKind = "admin"
)

// AdminSentinelID identifies the fixed-credential administrator. It is never
// issued by the identity provider and never parses as a user id.
const AdminSentinelID = "admin"

// Actor is who the current client is acting as.
type Actor struct {
	Kind ActorKind `json:"kind"`
	ID   string    `json:"id,omitempty"`
	Role Role      `json:"role,omitempty"`
}

// GuestActor is the anonymous actor.
func GuestActor() Actor {
	return Actor{Kind: ActorGuest}
}

// AdminActor is the administrator, always carrying the sentinel id.
func AdminActor() Actor {
	return Actor{Kind: ActorAdmin, ID: AdminSentinelID, Role: RoleAdmin}
}

// ActorForRole maps a stored role tag on user id to an actor.
func ActorForRole(id string, role Role) Actor {
	if role == RoleAdmin {
		return Actor{Kind: ActorAdmin, ID: id, Role: RoleAdmin}
	}

	return Actor{Kind: ActorCustomer, ID: id, Role: RoleCustomer}
}

// IsGuest reports whether the actor is anonymous.
func (a Actor) IsGuest() bool {
	return a.Kind == ActorGuest || a.Kind == ""
}

// IsAdmin reports whether the actor is an administrator.
func (a Actor) IsAdmin() bool {
	return a.Kind == ActorAdmin
}

// RoleFallback is the policy applied when a session exists but its role
// cannot be read from storage.
type RoleFallback string

const (
	// RoleFallbackCustomer treats the user as the least-privileged authenticated role.
	RoleFallbackCustomer RoleFallback = "customer"
	// RoleFallbackGuest refuses to authenticate until the role is known.
	RoleFallbackGuest RoleFallback = "guest"
)

// ParseRoleFallback reads a policy name from configuration. Empty means customer.
func ParseRoleFallback(s string) (RoleFallback, error) {
	switch RoleFallback(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleFallbackCustomer:
		return RoleFallbackCustomer, nil
	case RoleFallbackGuest:
		return RoleFallbackGuest, nil
	default:
		return "", errors.Errorf("unknown role fallback policy: %q", s)
	}
}

// Apply returns the actor for a session owned by userID whose role lookup failed.
func (p RoleFallback) Apply(userID string) Actor {
	if p == RoleFallbackGuest {
		return GuestActor()
	}

	return ActorForRole(userID, RoleCustomer)
}
