package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/techtonic/site/internal"
)

// DefaultTimeout is used when Timeout receives a non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that bounds request handling to d.
// The deadline is attached to the request context, so blocking calls made
// with the Context are cancelled too. When the deadline passes before the
// handler returns, the middleware returns a *TimeoutError. Panics in the
// handler are returned as *PanicError.
func Timeout(d time.Duration) internal.Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()

			c.SetContext(ctx)

			done := make(chan error, 1)
			go func() {
				// A panic here would escape Recover, which runs on the caller's goroutine.
				defer func() {
					if r := recover(); r != nil {
						done <- &PanicError{Value: r}
					}
				}()
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.LogWarn("request timeout", "timeout", d.String())
					return &TimeoutError{Duration: d}
				}
				return ctx.Err()
			}
		}
	}
}
