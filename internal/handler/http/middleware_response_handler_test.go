package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

// ---- WriteHeader ----

func TestResponseWriter_WriteHeader_SetsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError) // should be ignored

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int // multiple WriteHeader calls
		expectedStatus int
	}{
		{
			name:           "204 No Content",
			statusCodes:    []int{http.StatusNoContent},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "400 Bad Request",
			statusCodes:    []int{http.StatusBadRequest},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "404 Not Found",
			statusCodes:    []int{http.StatusNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "double call — first wins",
			statusCodes:    []int{http.StatusAccepted, http.StatusBadRequest},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "triple call — first wins",
			statusCodes:    []int{http.StatusOK, http.StatusCreated, http.StatusNotFound},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

// ---- Write ----

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.size) // 5 + 6
}

func TestResponseWriter_Write_AfterExplicitWriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusAccepted)
	n, err := w.Write([]byte("data"))

	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, http.StatusAccepted, w.status) // status must not change to 200
	assert.Equal(t, 4, w.size)
}

func TestResponseWriter_Write_EmptyBody(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte{})

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, w.size)
	assert.Equal(t, http.StatusOK, w.status) // WriteHeader is still called
}

// ---- Initial state ----

func TestResponseWriter_InitialState(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Equal(t, 0, w.status)
	assert.Equal(t, 0, w.size)
	assert.False(t, w.wroteHeader)
}

// ---- Proxying to underlying ResponseWriter ----

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
