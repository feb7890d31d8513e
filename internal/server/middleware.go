package server

import (
	"net/http"
	"time"
)

// statusResponseWriter captures the status and bytes written for auditing.
type statusResponseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// requestAudit records every request as an "http_request" audit entry, in
// addition to the per-operation entries the handlers write, and emits a
// structured access log line.
func (s *Server) requestAudit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w}

		next.ServeHTTP(srw, r)

		if srw.status == 0 {
			srw.status = http.StatusOK
		}
		ms := elapsedMS(start)

		errMsg := ""
		if srw.status >= 400 {
			errMsg = http.StatusText(srw.status)
		}
		s.record("http_request", r.URL.Path, map[string]interface{}{
			"method":       r.Method,
			"query_params": r.URL.Query().Encode(),
			"client_host":  r.RemoteAddr,
		}, start, map[string]interface{}{
			"status_code":      srw.status,
			"response_time_ms": ms,
		}, errMsg)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", srw.status,
			"bytes", srw.written,
			"duration_ms", ms,
		)
	})
}

// cors applies the configured CORS policy and short-circuits preflight
// requests. A "*" entry (or an empty list) allows every origin; otherwise the
// request's Origin is echoed back only when it is on the configured list.
func (s *Server) cors(next http.Handler) http.Handler {
	allowAll := len(s.cfg.CORSOrigins) == 0
	allowed := map[string]bool{}
	for _, origin := range s.cfg.CORSOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if allowAll {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
