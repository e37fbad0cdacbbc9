package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
	}{
		{
			name:          "OK response",
			handlerStatus: http.StatusOK,
			handlerBody:   "hello",
		},
		{
			name:          "Created response",
			handlerStatus: http.StatusCreated,
			handlerBody:   "created",
		},
		{
			name:          "Error response",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   "oops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := zap.NewNop().Sugar()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Request ID must be visible to downstream handlers
				reqID := GetRequestIDFromContext(r.Context())
				assert.NotEmpty(t, reqID)

				w.WriteHeader(tt.handlerStatus)
				w.Write([]byte(tt.handlerBody))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()

			LoggingMiddleware(log)(handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.handlerStatus, rec.Code)
			assert.Equal(t, tt.handlerBody, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}
