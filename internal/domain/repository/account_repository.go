// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"loginapi/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// exists for the given lookup key.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned by Create when the email is already taken.
// The storage backend must enforce this atomically (unique constraint); the
// service-level existence check only exists to produce a cleaner error.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account, assigning its ID. Concurrent creates
	// with the same email must resolve to exactly one success; the rest
	// fail with ErrDuplicateEmail.
	Create(ctx context.Context, account *entity.Account) error
}
