package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/techtonic/site/internal"
	"github.com/techtonic/site/pkg/logger"
)

// testContext is a minimal internal.Context for exercising middleware in isolation.
type testContext struct {
	mu       sync.Mutex
	response http.ResponseWriter
	request  *http.Request
	rw       *internal.ResponseWriter
	logger   *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	rw := internal.NewResponseWriter(w)
	return &testContext{
		response: rw,
		request:  r,
		rw:       rw,
		logger:   logger.NewNope(),
	}
}

func (c *testContext) req() *http.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.request
}

func (c *testContext) Request() *http.Request        { return c.req() }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.req().Context() }

func (c *testContext) SetContext(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Param(string) string          { return "" }
func (c *testContext) Query(name string) string     { return c.req().URL.Query().Get(name) }
func (c *testContext) Header(name string) string    { return c.req().Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }

func (c *testContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *testContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error { c.response.WriteHeader(code); return nil }

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) Render(code int, component internal.Component) error {
	c.response.WriteHeader(code)
	return component.Render(c.Context(), c.response)
}

func (c *testContext) DecodeJSON(v any) error {
	return json.NewDecoder(c.req().Body).Decode(v)
}

func (c *testContext) Written() bool                     { return c.rw.Written() }
func (c *testContext) Logger() *slog.Logger              { return c.logger }
func (c *testContext) LogDebug(msg string, attrs ...any) { c.logger.Debug(msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any)  { c.logger.Info(msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any)  { c.logger.Warn(msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any) { c.logger.Error(msg, attrs...) }

func (c *testContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.Context(), key, value))
}

func (c *testContext) Get(key any) any                          { return c.Context().Value(key) }
func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.rw }

func (c *testContext) Deadline() (time.Time, bool) { return c.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.Context().Done() }
func (c *testContext) Err() error                  { return c.Context().Err() }
func (c *testContext) Value(key any) any           { return c.Context().Value(key) }

var _ internal.Context = (*testContext)(nil)
