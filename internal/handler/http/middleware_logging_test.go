package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/confidential-vault/internal/logger"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{"ok", http.StatusOK, "OK", `"level":"info"`},
		{"client error", http.StatusForbidden, `{"error":"x"}`, `"level":"info"`},
		{"server error", http.StatusBadGateway, "", `"level":"error"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: newBufferLogger(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
			h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, `"method":"POST"`)
			assert.Contains(t, out, `"uri":"/api/v1/transactions"`)
			assert.Contains(t, out, `"trace_id":`)
			assert.Contains(t, out, `"duration":`)
		})
	}
}
