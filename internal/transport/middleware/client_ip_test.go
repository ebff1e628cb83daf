package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Karan-Chaurasia/AI-Dictionary/pkg/ctxutil"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		trustProxy bool
		remote     string
		forwarded  string
		want       string
	}{
		{name: "socket address", remote: "192.0.2.1:5000", want: "192.0.2.1"},
		{name: "ipv6 socket", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "no port", remote: "192.0.2.1", want: "192.0.2.1"},
		{name: "forwarded ignored", remote: "192.0.2.1:5000", forwarded: "203.0.113.9", want: "192.0.2.1"},
		{name: "forwarded trusted", trustProxy: true, remote: "10.0.0.1:5000", forwarded: "203.0.113.9, 10.0.0.1", want: "203.0.113.9"},
		{name: "trusted but absent", trustProxy: true, remote: "10.0.0.1:5000", want: "10.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = ctxutil.ClientIPFromCtx(r.Context())
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			ClientIP(tt.trustProxy)(handler).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
