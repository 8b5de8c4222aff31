package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "loginapi/internal/delivery/context"
	httpvalidator "loginapi/internal/delivery/http/validator"
	domainerrors "loginapi/internal/domain/errors"
	"loginapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns canned results so handler tests only exercise the
// boundary behavior.
type stubAuthUsecase struct {
	loginOutput    *usecase.AuthOutput
	loginErr       error
	registerOutput *usecase.AuthOutput
	registerErr    error

	lastLogin    *usecase.LoginInput
	lastRegister *usecase.RegisterInput
}

func (s *stubAuthUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	s.lastLogin = input

	return s.loginOutput, s.loginErr
}

func (s *stubAuthUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	s.lastRegister = input

	return s.registerOutput, s.registerErr
}

func newHandlerTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthUsecase{loginOutput: &usecase.AuthOutput{Name: "John Doe", Token: "signed.jwt.token"}}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"john@example.com","password":"password123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "John Doe", body["name"])
	assert.Equal(t, "signed.jwt.token", body["token"])

	require.NotNil(t, stub.lastLogin)
	assert.Equal(t, "john@example.com", stub.lastLogin.Email)
	assert.Equal(t, "password123", stub.lastLogin.Password)
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"missing password", `{"email":"john@example.com"}`},
		{"missing email", `{"password":"password123"}`},
		{"not an email", `{"email":"not-an-email","password":"password123"}`},
		{"empty body", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/login", tt.body)

			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
			assert.Nil(t, stub.lastLogin)
		})
	}
}

func TestAuthHandler_Login_UsecaseErrorPropagates(t *testing.T) {
	stub := &stubAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("login failed")}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newHandlerTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"john@example.com","password":"wrong"}`)

	// The handler hands typed failures to the error middleware untouched.
	err := h.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthUsecase{registerOutput: &usecase.AuthOutput{Name: "Jane Doe", Token: "signed.jwt.token"}}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, "signed.jwt.token", body["token"])

	require.NotNil(t, stub.lastRegister)
	assert.Equal(t, "Jane Doe", stub.lastRegister.Name)
}

func TestAuthHandler_Register_MissingName(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"jane@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.lastRegister)
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, http.MethodGet, "/auth/me", "")
	deliverycontext.SetSubject(c, "john@example.com")

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"john@example.com"}`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newHandlerTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
