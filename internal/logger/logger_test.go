package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		format    string
		debug     bool
		wantErr   bool
		wantDebug bool
	}{
		{name: "json info", format: FormatJSON},
		{name: "json debug", format: FormatJSON, debug: true, wantDebug: true},
		{name: "empty format falls back to json", format: ""},
		{name: "console", format: FormatConsole, debug: true, wantDebug: true},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := New(tt.format, tt.debug)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := l.Core().Enabled(zapcore.DebugLevel); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if !l.Core().Enabled(zapcore.InfoLevel) {
				t.Error("info level should always be enabled")
			}
		})
	}
}

func TestSync_NilLogger(t *testing.T) {
	t.Parallel()

	if err := Sync(nil); err != nil {
		t.Errorf("Sync(nil) = %v, want nil", err)
	}
}

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{"empty", "", 10, ""},
		{"plain", "/health", 10, "/health"},
		{"control characters removed", "/he\x00al\x1bth", 20, "/health"},
		{"newline injection removed", "/\nfake_log_line", 50, "/fake_log_line"},
		{"truncated", "abcdefghij", 4, "abcd..."},
		{"invalid utf8 dropped", "ok\xff", 10, "ok"},
		{"non-positive max uses default", "abc", 0, "abc"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeString(tt.input, tt.maxLength); got != tt.want {
				t.Errorf("SanitizeString(%q, %d) = %q, want %q", tt.input, tt.maxLength, got, tt.want)
			}
		})
	}
}

func TestSanitizePath_Truncates(t *testing.T) {
	t.Parallel()

	long := "/" + strings.Repeat("a", MaxPathLength+10)
	got := SanitizePath(long)
	if len(got) != MaxPathLength+len("...") {
		t.Errorf("len(SanitizePath) = %d, want %d", len(got), MaxPathLength+3)
	}
}

func TestSanitizeHeader(t *testing.T) {
	t.Parallel()

	if got := SanitizeHeader("https://a.com\r\n"); got != "https://a.com" {
		t.Errorf("SanitizeHeader() = %q, want %q", got, "https://a.com")
	}
}
