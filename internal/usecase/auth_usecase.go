// Package usecase defines the application's use case interfaces and their
// input/output DTOs. The delivery layer depends on these, never on the
// implementations.
package usecase

import "context"

// LoginInput carries the request-scoped credentials for a login attempt.
// The plaintext password exists only for the duration of the call and is
// never persisted.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthOutput is returned on successful login or registration: the account's
// display name plus a signed bearer token asserting the account's email.
type AuthOutput struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// AuthUsecase orchestrates credential verification and token issuance.
type AuthUsecase interface {
	// Login verifies the credentials against the stored account and mints a
	// token on success.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Register creates a new account and mints a token for it. It is not
	// idempotent: a second call with the same email always fails with
	// ErrUserAlreadyExists.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
}
