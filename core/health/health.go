package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kenali/kenali/core/handler"
	"github.com/kenali/kenali/core/logger"
	"github.com/kenali/kenali/core/response"
)

// Check is a named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Report is the JSON body of the health endpoints.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Liveness reports that the process is serving. No dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.JSON(Report{Status: "alive"})
}

// Readiness runs every check and answers 200 when all pass, 503 otherwise.
// Failed checks are logged and named in the report.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = logger.Nop()
	}
	return func(ctx C) handler.Response {
		report := Report{Status: "ready", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Fn(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				report.Status = "unavailable"
				report.Checks[c.Name] = err.Error()
				continue
			}
			report.Checks[c.Name] = "ok"
		}

		if report.Status != "ready" {
			return response.JSONWithStatus(report, http.StatusServiceUnavailable)
		}
		return response.JSON(report)
	}
}
