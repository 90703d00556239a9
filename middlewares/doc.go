// Package middlewares provides the HTTP middleware used by the site.
//
// # Request ID
//
// RequestID assigns each request an ID, reusing an upstream X-Request-ID
// when present and generating a time-ordered UUIDv7 otherwise. Pair it with
// RequestIDExtractor so every log line carries request_id:
//
//	app := site.New(
//	    site.WithLogger("site", middlewares.RequestIDExtractor()),
//	    site.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts panics into *PanicError values that flow into the
// App's ErrorHandler, which answers 500 like any other unexpected failure.
//
// # Timeout
//
// Timeout attaches a deadline to the request context. Blocking calls made
// with the Context, such as email delivery, are cancelled when it passes,
// and the request fails with *TimeoutError.
//
// # CORS
//
// CORS answers preflight requests and sets Access-Control-* headers so the
// contact endpoint can be called from the marketing site's origin.
package middlewares
