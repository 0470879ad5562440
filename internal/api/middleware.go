package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/metrics"
	"logistik-dashboard/internal/platform/obs"
)

// statusWriter captures the final HTTP status code and number of bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestIDMiddleware hands chi's request id to the rest of the app, including
// the X-Request-ID header of backend calls.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := obs.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs every request and feeds the latency histogram, labelled
// with the matched route pattern rather than the raw path.
func loggingMiddleware(log logger.ILogger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			dur := time.Since(start)
			if sw.status == 0 {
				sw.status = http.StatusOK
			}

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}

			if m != nil {
				m.HTTPDuration.
					WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).
					Observe(dur.Seconds())
			}

			log.Info("http request",
				logger.String("method", r.Method),
				logger.String("path", r.URL.RequestURI()),
				logger.Int("status", sw.status),
				logger.Int("bytes", sw.bytes),
				logger.Int64("dur_ms", dur.Milliseconds()),
				logger.String("req_id", obs.RequestID(r.Context())),
			)
		})
	}
}
