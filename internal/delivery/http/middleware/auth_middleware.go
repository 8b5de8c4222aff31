package middleware

import (
	"strings"

	deliverycontext "loginapi/internal/delivery/context"
	"loginapi/internal/delivery/http/response"
	domainerrors "loginapi/internal/domain/errors"
	"loginapi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenCodec service.TokenCodec
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenCodec service.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{tokenCodec: tokenCodec}
}

// Authenticate validates the bearer token and stores its subject (the account
// email) on the context. Any failure, including a missing header, yields the
// single INVALID_TOKEN response; causes are never distinguished.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return response.AppError(c, domainerrors.ErrInvalidToken)
		}

		subject, err := m.tokenCodec.Validate(tokenString)
		if err != nil {
			return response.AppError(c, domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetSubject(c, subject)

		return next(c)
	}
}
