package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "passport/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()

		// The generated ID is visible to both layers.
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(ctx))
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return nil
	})

	err := handler(c)

	require.NoError(t, err)

	generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
	_, parseErr := uuid.Parse(generated)
	assert.NoError(t, parseErr)
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Process(func(c echo.Context) error {
		assert.Equal(t, "client-supplied-id", deliverycontext.GetRequestID(c))

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
