// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInsufficientBalance is returned when a decrement would make the balance negative.
	ErrInsufficientBalance = errors.New("insufficient points balance")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error

	// IncrementPoints adds delta to the stored balance in one statement and
	// returns the balance after the update.
	IncrementPoints(ctx context.Context, id uuid.UUID, delta int) (int, error)

	// DecrementPoints subtracts amount only when the stored balance covers it.
	// It returns ErrInsufficientBalance otherwise.
	DecrementPoints(ctx context.Context, id uuid.UUID, amount int) (int, error)

	// ListByRole returns users with the role, ordered by name.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// CountByRoleSince counts users with the role created at or after since.
	CountByRoleSince(ctx context.Context, role entity.Role, since time.Time) (int, error)
}
