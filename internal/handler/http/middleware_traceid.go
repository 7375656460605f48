package http

import (
	"net/http"

	"github.com/google/uuid"
)

// withTraceID assigns every inbound request a trace id, attaches a
// request-scoped logger carrying it to the context, and echoes it back in
// the X-Trace-Id response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.NewString()

		log := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := log.WithContext(r.Context())

		w.Header().Set("X-Trace-Id", traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
