package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSuccess(t *testing.T) {
	c, rec := newTestContext()

	err := Success(c, http.StatusOK, map[string]string{"name": "Ada"}, "Done")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Done", resp.Message)
	assert.Nil(t, resp.Error)
	assert.Empty(t, resp.Token)
}

func TestSuccessWithToken(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessWithToken(c, http.StatusOK, nil, "bearer-token", "")

	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "bearer-token", resp.Token)
	assert.Equal(t, "Success", resp.Message)
}

func TestError_DefaultsMessageToStatusText(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, http.StatusConflict, "USER_ALREADY_EXISTS", "", "email taken")

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusText(http.StatusConflict), resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "USER_ALREADY_EXISTS", resp.Error.Code)
	assert.Equal(t, "email taken", resp.Error.Details)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name     string
		call     func(echo.Context) error
		wantCode int
	}{
		{"bad request", func(c echo.Context) error { return BadRequest(c, "BAD_REQUEST", "no") }, http.StatusBadRequest},
		{"unauthorized", func(c echo.Context) error { return Unauthorized(c, "INVALID_TOKEN", "no") }, http.StatusUnauthorized},
		{"not found", func(c echo.Context) error { return NotFound(c, "USER_NOT_FOUND", "no") }, http.StatusNotFound},
		{"conflict", func(c echo.Context) error { return Conflict(c, "USER_ALREADY_EXISTS", "no") }, http.StatusConflict},
		{"internal", func(c echo.Context) error { return InternalServerError(c, "INTERNAL_ERROR", "no") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
