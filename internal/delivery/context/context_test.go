package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestScopedValues(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	ctx = WithLogger(WithRequestID(ctx, "abc"), scoped)
	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestEchoContextValues(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	_, ok := GetIdentity(c)
	assert.False(t, ok)

	SetRequestID(c, "abc")
	identity := &entity.Identity{UserID: uuid.New()}
	SetIdentity(c, identity)

	assert.Equal(t, "abc", GetRequestID(c))
	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Same(t, identity, got)
}
