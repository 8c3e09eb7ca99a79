// Package health provides liveness and readiness handlers.
//
//	r.Get("/healthz", health.Liveness[*router.Context])
//	r.Get("/readyz", health.Readiness[*router.Context](log,
//		health.Check{Name: "nav", Fn: warmup},
//	))
package health
