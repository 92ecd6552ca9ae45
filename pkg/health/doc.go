// Package health serves liveness and readiness probes for the conversion
// service.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis":     redis.Healthcheck(client),
//	    "converter": api.ConverterCheck(conv),
//	}))
//
// Readiness answers 503 with the failing checks when any check returns an
// error. Checks share one timeout (default 5 seconds).
package health
