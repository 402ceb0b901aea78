// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage. Email uniqueness is
	// enforced by the store's unique index at insert time.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile applies a partial profile update as a single conditional
	// UPDATE statement and returns the resulting record. Fields left nil in
	// changes keep their stored values.
	UpdateProfile(ctx context.Context, id uuid.UUID, changes entity.ProfileChanges) (*entity.User, error)

	// UpdateToken overwrites the user's current bearer token.
	UpdateToken(ctx context.Context, id uuid.UUID, token string) error
}
