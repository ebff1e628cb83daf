package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karan-Chaurasia/AI-Dictionary/pkg/ctxutil"
)

func logOnce(t *testing.T, status int, req *http.Request) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_Success(t *testing.T) {
	t.Parallel()

	entry := logOnce(t, http.StatusOK, httptest.NewRequest(http.MethodGet, "/api/lookup", nil))

	assert.Equal(t, "http.request", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/lookup", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Contains(t, entry, "duration")
	assert.NotContains(t, entry, "client_ip")
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "INFO"},
		{status: http.StatusNotFound, level: "INFO"},
		{status: http.StatusTooManyRequests, level: "WARN"},
		{status: http.StatusInternalServerError, level: "ERROR"},
		{status: http.StatusBadGateway, level: "ERROR"},
	}
	for _, tt := range tests {
		entry := logOnce(t, tt.status, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, tt.level, entry["level"], "status %d", tt.status)
		assert.EqualValues(t, tt.status, entry["status"])
	}
}

func TestLogger_IncludesContextIdentifiers(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "test-request-id-123")
	ctx = ctxutil.WithClientIP(ctx, "198.51.100.4")

	entry := logOnce(t, http.StatusOK, req.WithContext(ctx))

	assert.Equal(t, "test-request-id-123", entry["request_id"])
	assert.Equal(t, "198.51.100.4", entry["client_ip"])
}
