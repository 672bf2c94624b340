package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	return m
}

func TestWith_AddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithTraceID(context.Background(), "t-1")
	ctx = WithUserID(ctx, "u-1")
	ctx = WithInterviewID(ctx, "iv-1")

	With(ctx, &base).Info().Msg("hello")

	m := logLine(t, &buf)
	if m["trace_id"] != "t-1" || m["user_id"] != "u-1" || m["interview_id"] != "iv-1" {
		t.Fatalf("fields = %v", m)
	}
}

func TestWith_OmitsAbsentFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	With(WithUserID(context.Background(), "u-1"), &base).Info().Msg("hello")

	m := logLine(t, &buf)
	if m["user_id"] != "u-1" {
		t.Fatalf("user_id = %v", m["user_id"])
	}
	if _, ok := m["trace_id"]; ok {
		t.Fatal("trace_id should be absent")
	}
	if _, ok := m["interview_id"]; ok {
		t.Fatal("interview_id should be absent")
	}
}
