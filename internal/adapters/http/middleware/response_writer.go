// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// cmd/server installs the chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler handed to chi's Use.
package middleware

import (
	"encoding/json"
	"net/http"
)

// maxCapturedBody caps how much of an error response is kept for logging.
// Error bodies are a single {"detail": ...} object, well under this.
const maxCapturedBody = 1024

// responseWriter wraps http.ResponseWriter to capture the status code, the
// bytes written and, for 4xx/5xx responses, the start of the body so the
// failure detail can be logged. It is shared by recovery, otel and logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
	errBody       []byte
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader captures the status code and delegates to the underlying writer.
// Only the first call takes effect; subsequent calls are ignored.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write delegates to the underlying writer, triggering an implicit 200 OK if
// WriteHeader has not been called.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	if rw.statusCode >= http.StatusBadRequest && len(rw.errBody) < maxCapturedBody {
		room := min(maxCapturedBody-len(rw.errBody), len(b))
		rw.errBody = append(rw.errBody, b[:room]...)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// detail returns the "detail" field of a captured error body, or "" when the
// response succeeded or its body is not a detail object.
func (rw *responseWriter) detail() string {
	if len(rw.errBody) == 0 {
		return ""
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rw.errBody, &body); err != nil {
		return ""
	}
	return body.Detail
}

// Unwrap returns the underlying http.ResponseWriter so that
// http.ResponseController and type assertions (http.Flusher, http.Hijacker)
// work through the wrapper.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
