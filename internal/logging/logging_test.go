package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"disabled": zerolog.Disabled,
		"loud":     zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
	if ValidLevel("loud") || !ValidLevel("trace") {
		t.Fatalf("ValidLevel mismatch")
	}
}

func TestCtxAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-1")

	Ctx(ctx).Info().Str("k", "v").Msg("hello")

	var ev map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if ev["request_id"] != "req-1" || ev["k"] != "v" || ev["message"] != "hello" {
		t.Fatalf("event=%v", ev)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Fatalf("empty context should have no request id")
	}
}

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b || len(a) != 36 || strings.Count(a, "-") != 4 {
		t.Fatalf("ids %q %q", a, b)
	}
}
