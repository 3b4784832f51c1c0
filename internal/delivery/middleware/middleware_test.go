package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comerciaya/config"
	deliverycontext "comerciaya/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	return e
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{}, false)

	t.Run("reuses client header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", rec.Body.String())
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces oversized header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Len(t, rec.Body.String(), 36)
	})
}

func TestLogger_LogsRenderedStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Zero(t, buf.Len(), "successful requests are quiet outside debug")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, "/boom", entry["route"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestLogger_DebugLogsEveryRequest(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?name=cafe", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "name=cafe", entry["query"])
}
