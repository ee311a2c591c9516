package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: LevelDebug, Format: "json"}, &buf)

	l.WithComponent("order_service").Info("hello", "order_id", 7)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0]["component"] != "order_service" {
		t.Errorf("component = %v", lines[0]["component"])
	}
	if lines[0]["order_id"] != float64(7) {
		t.Errorf("order_id = %v", lines[0]["order_id"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: LevelWarn}, &buf)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["msg"] != "kept" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestErrorAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: LevelInfo, EnableCaller: true}, &buf)

	l.Error("boom")

	lines := decodeLines(t, &buf)
	caller, _ := lines[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q", caller)
	}
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: LevelInfo}, &buf)

	var scoped *Logger
	h := l.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scoped = FromContext(r.Context(), nil)
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if scoped == nil {
		t.Fatal("expected request-scoped logger in context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != "req-1" {
		t.Errorf("request id header = %q", got)
	}

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected start and completion lines, got %d", len(lines))
	}
	done := lines[1]
	if done["status_code"] != float64(http.StatusTeapot) {
		t.Errorf("status_code = %v", done["status_code"])
	}
	if done["request_id"] != "req-1" {
		t.Errorf("request_id = %v", done["request_id"])
	}
	if done["bytes_out"] != float64(0) {
		t.Errorf("bytes_out = %v", done["bytes_out"])
	}
}

func TestHTTPMiddlewareLogsResponseSize(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: LevelInfo}, &buf)

	h := l.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
		_, _ = w.Write([]byte("\n"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	lines := decodeLines(t, &buf)
	done := lines[len(lines)-1]
	if done["bytes_out"] != float64(16) {
		t.Errorf("bytes_out = %v, want 16", done["bytes_out"])
	}
	if done["status_code"] != float64(http.StatusOK) {
		t.Errorf("status_code = %v", done["status_code"])
	}
}

func TestHTTPMiddlewareGeneratesRequestID(t *testing.T) {
	l := Discard()
	h := l.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if len(rec.Header().Get(RequestIDHeader)) != 36 {
		t.Errorf("expected generated uuid, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := Discard()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := FromContext(req.Context(), fallback); got != fallback {
		t.Error("expected fallback logger")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "1.1.1.1:80", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": "10.0.0.9"}, "1.1.1.1:80", "10.0.0.9"},
		{"remote addr", nil, "192.168.1.4:5555", "192.168.1.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
