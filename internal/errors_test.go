package internal_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtonic/site/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		err := internal.ErrNotFound("not found")
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("handler failed: %w", internal.ErrBadRequest("Missing required fields"))
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(errors.New("something went wrong")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(nil))
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("wrapped HTTPError preserves fields", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("resend down")
		httpErr := internal.ErrInternal("boom", internal.WithError(cause))
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", httpErr))

		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusInternalServerError, got.StatusCode())
		require.Equal(t, "boom", got.Message)
		require.ErrorIs(t, got, cause)
	})

	t.Run("unrelated error returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("plain error")))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "bad request keeps message",
			err:      internal.ErrBadRequest("Missing required fields"),
			wantCode: http.StatusBadRequest,
			wantBody: "Missing required fields",
		},
		{
			name:     "wrapped http error",
			err:      fmt.Errorf("route: %w", internal.ErrMethodNotAllowed("Method not allowed")),
			wantCode: http.StatusMethodNotAllowed,
			wantBody: "Method not allowed",
		},
		{
			name:     "plain error hides details",
			err:      errors.New("decode json: unexpected EOF"),
			wantCode: http.StatusInternalServerError,
			wantBody: internal.InternalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := internal.New(
				internal.WithErrorHandler(internal.JSONErrorHandler),
				internal.WithHandlers(failingHandler{err: tt.err}),
			)

			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var body internal.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body.Error)
		})
	}
}

type failingHandler struct {
	err error
}

func (h failingHandler) Routes(r internal.Router) {
	r.GET("/fail", func(internal.Context) error { return h.err })
}
