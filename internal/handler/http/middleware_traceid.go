package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation id. Incoming values are
// trusted as-is so that callers can stitch our logs to theirs.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id, binds it to the request
// logger and echoes it back in the response headers.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := traceIDFromRequest(r)

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}

// traceIDFromRequest reuses the caller-supplied trace id when present and
// mints a fresh one otherwise.
func traceIDFromRequest(r *http.Request) string {
	if traceID := r.Header.Get(traceIDHeader); traceID != "" {
		return traceID
	}
	return uuid.NewString()
}
