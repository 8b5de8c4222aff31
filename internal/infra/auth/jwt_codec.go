package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"loginapi/config"
	domainerrors "loginapi/internal/domain/errors"
	"loginapi/internal/domain/service"
)

// tokenIssuer is the constant issuer claim carried by every token.
const tokenIssuer = "login-auth-api"

// jwtCodec is a concrete implementation of the TokenCodec interface using the
// JWT standard with an HS256 shared-secret signature.
type jwtCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // injectable clock, expiry is computed in UTC
}

// NewJWTCodec is the constructor for jwtCodec. The signing secret comes from
// external configuration; an empty secret is a configuration error.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &jwtCodec{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    cfg.TokenTTL(),
		now:    time.Now,
	}, nil
}

// Issue mints a signed token with the constant issuer, the subject and an
// expiry of now + TTL.
func (c *jwtCodec) Issue(subject string) (string, error) {
	now := c.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Validate verifies the signature and expiry of a caller-supplied token and
// returns the embedded subject. All failure modes collapse to the single
// ErrInvalidToken sentinel so callers cannot tell malformed from expired from
// forged.
func (c *jwtCodec) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil || !token.Valid {
		return "", domainerrors.ErrInvalidToken
	}

	return claims.Subject, nil
}
