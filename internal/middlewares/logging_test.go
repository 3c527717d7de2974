package middlewares

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
		wantLevel     zapcore.Level
	}{
		{
			name:          "OK response",
			handlerStatus: http.StatusOK,
			handlerBody:   "hello",
			wantLevel:     zapcore.InfoLevel,
		},
		{
			name:          "Conflict",
			handlerStatus: http.StatusConflict,
			handlerBody:   "busy",
			wantLevel:     zapcore.InfoLevel,
		},
		{
			name:          "Internal server error",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   "error",
			wantLevel:     zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.New(core).Sugar())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/flows", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			body, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(body))

			reqID := rr.Header().Get(RequestIDHeader)
			require.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenID)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, int64(tt.handlerStatus), fields["status"])
			assert.Equal(t, fmt.Sprintf("%dB", len(tt.handlerBody)), fields["response_size"])
		})
	}
}

func TestResponseWriter_Flush(t *testing.T) {
	handler := LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("event: ping\n\n"))
		assert.NoError(t, http.NewResponseController(w).Flush())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, rr.Flushed)
	assert.Equal(t, "event: ping\n\n", rr.Body.String())
}
