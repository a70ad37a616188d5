package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID gives every request a trace identifier and a request-scoped
// child logger carrying it. An identifier supplied by the caller is kept, so
// a trace can span the API client and the server; otherwise a fresh UUID is
// generated. The identifier is echoed back in the response header either way.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, generated := requestTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		if generated {
			l.Debug().Msg("request carried no trace id, generated one")
		}

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// requestTraceID resolves the trace identifier for r and reports whether it
// had to be generated.
func requestTraceID(r *http.Request) (string, bool) {
	if id := r.Header.Get(traceIDHeader); id != "" {
		return id, false
	}
	return uuid.NewString(), true
}
