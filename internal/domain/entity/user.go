// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account record of the system. Email doubles as the login
// identifier and is unique across the store.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated by the store at creation.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // The user's email address; unique, used as the login key.
	PasswordHash string    // The bcrypt digest of the user's password. The plaintext is never persisted.
	APIKey       string    // An opaque key generated once at registration. Immutable afterwards.
	Token        string    // The current bearer token, replaced on every successful login.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// ProfileChanges carries a partial profile update. A nil field keeps the stored
// value; only these three fields are mutable through the profile update path.
type ProfileChanges struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// IsEmpty reports whether no field is set, in which case an update is a no-op.
func (c ProfileChanges) IsEmpty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Email == nil
}
