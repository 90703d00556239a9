// Package health serves liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] in parallel under a shared
// timeout and answers 503 if any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "content": section.Healthcheck(),
//	}))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// asks for JSON with ?format=json or Accept: application/json:
//
//	{"status":"unhealthy","checks":{"content":{"status":"unhealthy","error":"..."}}}
package health
