package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsQuietRequestLog(t *testing.T) {
	if !isQuietRequestLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check request log to be quiet")
	}
	if isQuietRequestLog("http request", []any{"path", "/v1/h2h"}) {
		t.Fatalf("did not expect api request log to be quiet")
	}
	if isQuietRequestLog("archive import finished", []any{"path", "/healthz"}) {
		t.Fatalf("only request logs can be quiet")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"team", "Flamengo", "matches", 38, "error", errors.New("boom"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "team" || attrs[0].Value.AsString() != "Flamengo" {
		t.Fatalf("unexpected team attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "matches" || attrs[1].Value.AsInt64() != 38 {
		t.Fatalf("unexpected matches attribute: %+v", attrs[1])
	}
	if attrs[2].Value.AsString() != "boom" {
		t.Fatalf("unexpected error attribute: %+v", attrs[2])
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute: %+v", attrs[3])
	}
}

func TestLogValue(t *testing.T) {
	if v := logValue(1500 * time.Millisecond); v.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value: %s", v.AsString())
	}
	if v := logValue([]string{"a", "b"}); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("unexpected slice value: %v", v)
	}
	if v := logValue(struct{ N int }{N: 3}); v.AsString() != "{3}" {
		t.Fatalf("unexpected fallback value: %s", v.AsString())
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  otellog.Severity
	}{
		{level: zapcore.DebugLevel, want: otellog.SeverityDebug},
		{level: zapcore.InfoLevel, want: otellog.SeverityInfo},
		{level: zapcore.WarnLevel, want: otellog.SeverityWarn},
		{level: zapcore.ErrorLevel, want: otellog.SeverityError},
		{level: zapcore.FatalLevel, want: otellog.SeverityFatal},
	}
	for _, tc := range tests {
		if got := severityFor(tc.level); got != tc.want {
			t.Fatalf("severityFor(%s)=%v want %v", tc.level, got, tc.want)
		}
	}
}
