package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, incomingTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "custom trace ID", requestTraceID: "my-custom-trace-id"},
		{name: "UUID v4 string", requestTraceID: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "long custom trace ID", requestTraceID: "very-long-trace-id-that-is-still-valid-0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeWithTraceID(newTestHandler(), tt.requestTraceID)
			assert.Equal(t, tt.requestTraceID, rr.Header().Get(traceIDHeader))
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestWithTraceID_GeneratesUUIDWhenMissing(t *testing.T) {
	rr := executeWithTraceID(newTestHandler(), "")

	id := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", id)
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestRequestTraceID(t *testing.T) {
	supplied := httptest.NewRequest(http.MethodGet, "/test", nil)
	supplied.Header.Set(traceIDHeader, "supplied-id")

	id, generated := requestTraceID(supplied)
	assert.Equal(t, "supplied-id", id)
	assert.False(t, generated)

	id, generated = requestTraceID(httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.True(t, generated)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestWithTraceID_DownstreamLogsCarryTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("downstream")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-in-logs")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-in-logs"`)
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := newTestHandler()
	var ctxLogger *logger.Logger

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-context-test")

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.NotNil(t, ctxLogger)
}

func TestWithTraceID_AlwaysCallsNext(t *testing.T) {
	h := newTestHandler()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
