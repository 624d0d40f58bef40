package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantCode   int
		wantOrigin string
		wantVary   bool
	}{
		{name: "configured origin", allowed: []string{"https://match-analyst.example.com"}, method: http.MethodGet, origin: "https://match-analyst.example.com", wantCode: http.StatusOK, wantOrigin: "https://match-analyst.example.com", wantVary: true},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "https://match-analyst.example.com", wantCode: http.StatusNoContent, wantOrigin: "*"},
		{name: "unconfigured origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: "https://not-allowed.example.com", wantCode: http.StatusOK},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodGet, wantCode: http.StatusOK},
		{name: "blank entries ignored", allowed: []string{" ", ""}, method: http.MethodOptions, origin: "https://a.example.com", wantCode: http.StatusNoContent},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, "/v1/h2h", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tc.allowed, okHandler()).ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if got := rec.Header().Get("Vary") == "Origin"; got != tc.wantVary {
				t.Fatalf("unexpected Vary header: %q", rec.Header().Get("Vary"))
			}
			if tc.wantOrigin != "" && !strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), internalJobTokenHeader) {
				t.Fatalf("expected internal token header to be allowed")
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /HEALTHZ "} {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
	for _, path := range []string{"/v1/h2h", "/v1/teams/Flamengo/stats", "/", "/v1/news"} {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRequestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: `"level":"INFO"`},
		{status: http.StatusNotFound, wantLevel: `"level":"WARN"`},
		{status: http.StatusServiceUnavailable, wantLevel: `"level":"ERROR"`},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		logger := logging.NewJSONWriter(&buf, logging.LevelDebug)
		handler := RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte("body"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/news", nil))

		line := buf.String()
		if !strings.Contains(line, tc.wantLevel) {
			t.Fatalf("status %d: expected %s in %s", tc.status, tc.wantLevel, line)
		}
		if !strings.Contains(line, `"bytes":4`) || !strings.Contains(line, `"path":"/v1/news"`) {
			t.Fatalf("status %d: missing request fields in %s", tc.status, line)
		}
	}
}
