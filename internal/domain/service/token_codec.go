package service

// TokenCodec defines the interface for minting and verifying the signed,
// time-bounded bearer credential issued at login and registration.
//
// A token is stateless: validity is fully determined by its signature and
// expiry at verification time, never by a lookup.
type TokenCodec interface {
	// Issue mints a signed token asserting the given subject (the account
	// email). It fails only on configuration-level problems such as a
	// missing signing key, never as a per-request condition.
	Issue(subject string) (string, error)

	// Validate verifies the signature and expiry of a caller-supplied token
	// and returns the embedded subject. Every failure mode (malformed input,
	// signature mismatch, expiry, empty string) collapses to the single
	// sentinel domainerrors.ErrInvalidToken so callers cannot distinguish
	// causes. It must be safe to call with arbitrary untrusted strings.
	Validate(token string) (string, error)
}
