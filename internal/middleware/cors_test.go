package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCORSOptions(t *testing.T) {
	t.Parallel()

	opts := CORSOptions([]string{"https://a.com"})
	if !opts.AllowCredentials {
		t.Error("Expected credentials to be allowed")
	}
	if len(opts.AllowedHeaders) != 1 || opts.AllowedHeaders[0] != "*" {
		t.Errorf("Expected all headers allowed, got %v", opts.AllowedHeaders)
	}
	if len(opts.AllowedMethods) != len(AllowedMethods) {
		t.Errorf("Expected %d methods, got %d", len(AllowedMethods), len(opts.AllowedMethods))
	}
	if opts.AllowOriginFunc != nil {
		t.Error("Expected no origin func when origins are configured")
	}

	empty := CORSOptions(nil)
	if empty.AllowOriginFunc == nil || empty.AllowOriginFunc("https://a.com") {
		t.Error("Expected empty origin list to reject every origin")
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		origin      string
		wantAllowed bool
	}{
		{"allowed", []string{"https://a.com", "https://b.com"}, "https://b.com", true},
		{"not listed", []string{"https://a.com"}, "https://c.com", false},
		{"empty list", []string{}, "https://a.com", false},
		{"scheme matters", []string{"https://a.com"}, "http://a.com", false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			CORS(tt.origins, zap.NewNop())(next).ServeHTTP(w, req)

			got := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantAllowed && got != tt.origin {
				t.Errorf("Expected Access-Control-Allow-Origin %q, got %q", tt.origin, got)
			}
			if !tt.wantAllowed && got != "" {
				t.Errorf("Expected no Access-Control-Allow-Origin, got %q", got)
			}
			if w.Code != http.StatusOK {
				t.Errorf("Expected handler to run, got status %d", w.Code)
			}
		})
	}
}

func TestCORS_OriginListIsCopied(t *testing.T) {
	t.Parallel()

	origins := []string{"https://a.com"}
	mw := CORS(origins, zap.NewNop())
	origins[0] = "https://evil.com"

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://a.com")
	w := httptest.NewRecorder()
	mw(http.NotFoundHandler()).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://a.com" {
		t.Errorf("Expected origin fixed at construction, got %q", got)
	}
}

func TestCORS_DebugLogging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://a.com")

	CORS([]string{"https://a.com"}, zap.New(core))(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	if logs.FilterLoggerName("cors").Len() == 0 {
		t.Error("Expected rs/cors debug output routed through zap")
	}
}
