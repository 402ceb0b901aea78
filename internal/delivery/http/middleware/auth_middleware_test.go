package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"passport/internal/domain/service"
	mockService "passport/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/getProfile", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()

	tokenSvc.EXPECT().Verify("valid-token").Return(&service.Claims{
		UserID:           userID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)

	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "Bearer valid-token")

	var nextCalled bool
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get("userID"))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestAuthMiddleware_Authenticate_VerifyFailure(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("expired-token").Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer expired-token")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}
