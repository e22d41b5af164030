package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestRequestID_GeneratesValidUUID(t *testing.T) {
	c, rec := newTraceContext(t)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated trace ID should be a UUID")
	assert.Equal(t, seen, rec.Header().Get(TraceIDHeader), "context and header must carry the same ID")
}

func TestRequestID_HonorsIncomingHeader(t *testing.T) {
	c, rec := newTraceContext(t)
	c.Request().Header.Set(TraceIDHeader, "edge-proxy-trace-42")

	handler := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "edge-proxy-trace-42", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "edge-proxy-trace-42", rec.Header().Get(TraceIDHeader))
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	ids := make(map[string]bool)

	handler := RequestID()(func(c echo.Context) error {
		ids[GetTraceID(c)] = true
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		c, _ := newTraceContext(t)
		require.NoError(t, handler(c))
	}

	assert.Len(t, ids, 5)
}

func TestGetTraceID_EmptyWithoutMiddleware(t *testing.T) {
	c, _ := newTraceContext(t)

	assert.Empty(t, GetTraceID(c))
}

func TestGetTraceID_IgnoresNonStringValue(t *testing.T) {
	c, _ := newTraceContext(t)
	c.Set(TraceIDContextKey, 12345)

	assert.Empty(t, GetTraceID(c))
}
