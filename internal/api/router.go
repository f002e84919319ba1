// internal/api/router.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/common/metrics"
	"financial-assistance/internal/common/observability"
	aiassistance "financial-assistance/internal/handlers/ai-assistance"
	submitapplication "financial-assistance/internal/handlers/submit-application"
)

// Pinger is checked by /ready. Redis satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Dependencies struct {
	AIAssistance      http.Handler
	SubmitApplication http.Handler

	Service string
	Version string

	// Readiness checks keyed by name; nil values are ignored.
	Checks map[string]Pinger

	Observability  *observability.Observability
	Logger         logger.Logger
	RequestTimeout time.Duration
}

func NewRouter(deps Dependencies) *chi.Mux {
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	if deps.RequestTimeout <= 0 {
		deps.RequestTimeout = 60 * time.Second
	}
	log := logger.Component(deps.Logger, "http")

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log),
		instrument(deps.Observability),
		middleware.Recoverer,
		middleware.Timeout(deps.RequestTimeout),
	)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": deps.Service,
			"version": deps.Version,
		})
	})
	r.Get("/ready", readiness(deps.Checks, log))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if deps.AIAssistance != nil {
		r.Method(http.MethodPost, aiassistance.Route, deps.AIAssistance)
	}
	if deps.SubmitApplication != nil {
		r.Method(http.MethodPost, submitapplication.Route, deps.SubmitApplication)
	}

	return r
}

func readiness(checks map[string]Pinger, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check.Ping(ctx); err != nil {
				log.Warn("readiness check failed", map[string]interface{}{
					"check": name,
					"error": err,
				})
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		state := "ready"
		if status != http.StatusOK {
			state = "not_ready"
		}
		writeJSON(w, status, map[string]interface{}{
			"status": state,
			"checks": results,
		})
	}
}

// requestLogger logs one line per request once the handler returns.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := statusOf(ww)
			fields := map[string]interface{}{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"latency":    time.Since(start).String(),
				"remote_ip":  r.RemoteAddr,
			}
			switch {
			case status >= http.StatusInternalServerError:
				log.Error("request completed", fields)
			case status >= http.StatusBadRequest:
				log.Warn("request completed", fields)
			default:
				log.Info("request completed", fields)
			}
		})
	}
}

// instrument records Prometheus and OpenTelemetry request metrics, labelled
// by chi route pattern so ids in paths never explode cardinality.
func instrument(obs *observability.Observability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			route := routePattern(r)
			status := statusOf(ww)

			metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())
			obs.RecordRequest(r.Context(), route, status, elapsed)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
