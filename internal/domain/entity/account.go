// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a durable user record keyed by a unique email. The password is
// never stored in plaintext; only the hash produced by the PasswordHasher
// service lives here.
type Account struct {
	ID           uuid.UUID // Store-assigned identifier for the account.
	Name         string    // The account holder's display name.
	Email        string    // Unique login identifier, stored case-sensitively.
	PasswordHash string    // Salted one-way hash of the account password.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
