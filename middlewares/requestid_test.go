package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/techtonic/site/internal"
	"github.com/techtonic/site/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUIDv7 when not present", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.RequestID()(func(c internal.Context) error {
			return nil
		})

		require.NoError(t, handler(ctx))

		id, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
		require.NoError(t, err)
		require.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "existing-request-id-123")
		rec := httptest.NewRecorder()

		handler := middlewares.RequestID()(func(c internal.Context) error {
			return nil
		})

		require.NoError(t, handler(newTestContext(rec, req)))
		require.Equal(t, "existing-request-id-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("falls back to correlation ID header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "corr-1")
		rec := httptest.NewRecorder()

		handler := middlewares.RequestID()(func(c internal.Context) error {
			return nil
		})

		require.NoError(t, handler(newTestContext(rec, req)))
		require.Equal(t, "corr-1", rec.Header().Get("X-Request-ID"))
	})

	t.Run("ignores oversized client IDs", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
		rec := httptest.NewRecorder()

		handler := middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string {
			return "generated"
		}))(func(c internal.Context) error {
			return nil
		})

		require.NoError(t, handler(newTestContext(rec, req)))
		require.Equal(t, "generated", rec.Header().Get("X-Request-ID"))
	})

	t.Run("GetRequestID returns stored ID", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		var capturedID string
		handler := middlewares.RequestID()(func(c internal.Context) error {
			capturedID = middlewares.GetRequestID(c.Context())
			return nil
		})

		require.NoError(t, handler(ctx))
		require.NotEmpty(t, capturedID)
		require.Equal(t, capturedID, rec.Header().Get("X-Request-ID"))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns attribute when request ID present", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.RequestID()(func(c internal.Context) error {
			return nil
		})
		require.NoError(t, handler(ctx))

		attr, ok := middlewares.RequestIDExtractor()(ctx.Context())
		require.True(t, ok)
		require.Equal(t, "request_id", attr.Key)
		require.NotEmpty(t, attr.Value.String())
	})

	t.Run("skips when absent", func(t *testing.T) {
		t.Parallel()

		_, ok := middlewares.RequestIDExtractor()(t.Context())
		require.False(t, ok)
	})
}
