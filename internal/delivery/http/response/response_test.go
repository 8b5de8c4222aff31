package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "loginapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestError_WireShape(t *testing.T) {
	c, rec := newResponseTestContext()

	require.NoError(t, Error(c, http.StatusConflict, "USER_ALREADY_EXISTS", "User already exists with this email"))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Exactly the four contract fields, nothing else.
	assert.Len(t, body, 4)
	assert.Equal(t, "User already exists with this email", body["message"])
	assert.Equal(t, "USER_ALREADY_EXISTS", body["error"])
	assert.Equal(t, float64(http.StatusConflict), body["status"])

	timestamp, err := time.Parse(time.RFC3339Nano, body["timestamp"].(string))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, timestamp.Location())
	assert.WithinDuration(t, time.Now().UTC(), timestamp, 5*time.Second)
}

func TestError_EmptyMessageFallsBackToStatusText(t *testing.T) {
	c, rec := newResponseTestContext()

	require.NoError(t, Error(c, http.StatusBadRequest, "VALIDATION_FAILED", ""))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusText(http.StatusBadRequest), body.Message)
}

func TestAppError_UsesTypedMapping(t *testing.T) {
	c, rec := newResponseTestContext()

	require.NoError(t, AppError(c, domainerrors.ErrInternalError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, http.StatusInternalServerError, body.Status)
}

func TestBindingError(t *testing.T) {
	c, rec := newResponseTestContext()

	require.NoError(t, BindingError(c, "Invalid login input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error)
	assert.Equal(t, "Invalid login input", body.Message)
}
