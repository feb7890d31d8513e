package server

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/sunitj/fastx-mcp/internal/audit"
	"github.com/sunitj/fastx-mcp/internal/fault"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error      string  `json:"error"`
	StatusCode int     `json:"status_code"`
	Timestamp  float64 `json:"timestamp"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorBody{
		Error:      msg,
		StatusCode: status,
		Timestamp:  float64(time.Now().UnixNano()) / float64(time.Second),
	})
}

// statusFor maps fault kinds to distinct externally visible statuses:
// bad input, processing failure, or unexpected.
func statusFor(err error) int {
	switch fault.KindOf(err) {
	case fault.Validation:
		return http.StatusBadRequest
	case fault.Conversion, fault.Manipulation, fault.Tool:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// elapsedMS returns the duration since start in milliseconds, rounded the
// way the responses report it.
func elapsedMS(start time.Time) float64 {
	ms := float64(time.Since(start).Nanoseconds()) / 1e6
	return math.Round(ms*100) / 100
}

// record appends a per-operation audit entry; an empty errMsg marks success.
// Auditing never fails the operation that triggered it.
func (s *Server) record(op, endpoint string, params map[string]interface{}, start time.Time, summary map[string]interface{}, errMsg string) {
	if summary == nil {
		summary = map[string]interface{}{}
	}

	s.audit.Record(audit.Entry{
		Operation:       op,
		Endpoint:        endpoint,
		Parameters:      params,
		Success:         errMsg == "",
		ExecutionTimeMS: elapsedMS(start),
		ResultSummary:   summary,
		ErrorMessage:    errMsg,
	})
}

// fail audits a failed operation, logs it and writes the mapped error
// response. Unexpected errors are reported opaquely and logged in full.
func (s *Server) fail(w http.ResponseWriter, op, endpoint string, params map[string]interface{}, start time.Time, err error) {
	var msg string
	switch fault.KindOf(err) {
	case fault.Validation:
		msg = "Validation error: " + err.Error()
		s.logger.Warn(msg, "operation", op)
	case fault.Conversion:
		msg = "Conversion error: " + err.Error()
		s.logger.Error(msg, "operation", op)
	case fault.Manipulation:
		msg = "Manipulation error: " + err.Error()
		s.logger.Error(msg, "operation", op)
	case fault.Tool:
		msg = "seqkit error: " + err.Error()
		s.logger.Error(msg, "operation", op)
	default:
		// full detail stays internal
		s.logger.Error("unhandled error", "operation", op, "err", err)
		msg = "Internal server error"
	}

	s.record(op, endpoint, params, start, nil, msg)
	s.writeError(w, statusFor(err), msg)
}
