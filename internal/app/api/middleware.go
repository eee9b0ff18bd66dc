package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/common/metrics"
)

const requestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestID assigns an id to every request unless the caller sent one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// observe emits one log line and one counter/latency sample per request.
func observe(log *logger.Logger, m *metrics.ServerMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			log.WithRequestID(w.Header().Get(requestIDHeader)).Debug("http_request", map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": elapsed.Milliseconds(),
			})
			if m != nil {
				m.Requests.WithLabelValues(r.URL.Path, http.StatusText(rec.status)).Inc()
				m.LatencyMS.WithLabelValues(r.URL.Path).Observe(float64(elapsed.Milliseconds()))
			}
		})
	}
}
