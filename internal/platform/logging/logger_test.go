package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.With("component", "loader").Warn("match data path not found", "path", "/tmp/missing", "error", errors.New("boom"))

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal log line: %v (raw=%q)", err, buf.String())
	}
	if got, _ := line["level"].(string); got != "WARN" {
		t.Fatalf("unexpected level: %v", line["level"])
	}
	if got, _ := line["component"].(string); got != "loader" {
		t.Fatalf("unexpected component: %v", line["component"])
	}
	if got, _ := line["path"].(string); got != "/tmp/missing" {
		t.Fatalf("unexpected path: %v", line["path"])
	}
	if got, _ := line["error"].(string); got != "boom" {
		t.Fatalf("unexpected error field: %v", line["error"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("dropped")
	logger.Debug("dropped too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestLogger_OddArgsDoNotPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("odd", "dangling")
	logger.Info("non-string key", 42, "value")

	out := buf.String()
	if !strings.Contains(out, `"dangling":null`) {
		t.Fatalf("expected dangling key with null value, got %q", out)
	}
	if !strings.Contains(out, `"arg":"value"`) {
		t.Fatalf("expected fallback arg key, got %q", out)
	}
}

func TestLogger_NilReceiverUsesDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.Sync() != nil {
		t.Fatalf("expected nil sync error for nil logger")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want %s", in, got, want)
		}
	}
}

func TestLogger_MirrorReceivesBoundFields(t *testing.T) {
	var (
		gotMsg  string
		gotArgs []any
		calls   int
	)
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		calls++
		gotMsg = msg
		gotArgs = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("component", "archive")
	logger.Debug("below level")
	logger.InfoContext(context.Background(), "import finished", "groups", 3)

	if calls != 1 {
		t.Fatalf("expected one mirrored entry, got %d", calls)
	}
	if gotMsg != "import finished" {
		t.Fatalf("unexpected mirrored message %q", gotMsg)
	}
	if len(gotArgs) != 4 || gotArgs[0] != "component" || gotArgs[2] != "groups" {
		t.Fatalf("unexpected mirrored args %v", gotArgs)
	}
}
