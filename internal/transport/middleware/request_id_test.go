package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karan-Chaurasia/AI-Dictionary/pkg/ctxutil"
)

func serveWithRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReuseIncoming(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveWithRequestID(t, "lookup-42")
	assert.Equal(t, "lookup-42", ctxID)
	assert.Equal(t, "lookup-42", headerID)
}

func TestRequestID_GenerateNew(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveWithRequestID(t, "")
	_, err := uuid.Parse(ctxID)
	assert.NoError(t, err)
	assert.Equal(t, ctxID, headerID)
}

func TestRequestID_RejectsUnsafeIncoming(t *testing.T) {
	t.Parallel()

	for _, incoming := range []string{"has space", "tab\tid", strings.Repeat("a", maxRequestIDLen+1)} {
		ctxID, headerID := serveWithRequestID(t, incoming)
		assert.NotEqual(t, incoming, ctxID)
		_, err := uuid.Parse(headerID)
		assert.NoError(t, err, "incoming %q", incoming)
	}
}
