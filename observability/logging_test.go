package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/authcorp/libs/go/fnkit/functional"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger            = (*DefaultLogger)(nil)
	_ Logger            = NopLogger{}
	_ functional.Logger = (*DefaultLogger)(nil)
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Level: LogLevelInfo, Output: &buf})

	l.Debug("hidden")
	l.Info("hello", "user", "alice", "password", "hunter2")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "alice", entry["user"])
	require.Equal(t, "[REDACTED]", entry["password"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Level: LogLevelDebug, Format: "text", Output: &buf})
	l.With("access_token", "abc").Debug("shown")

	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "access_token=[REDACTED]")
	require.NotContains(t, buf.String(), "abc")
}

func TestResultTapsThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Format: "text", Output: &buf})

	functional.Ok(7).LogNext(l)
	functional.Err[int](errors.New("bad")).LogError(l)

	require.Contains(t, buf.String(), "msg=7")
	require.Contains(t, buf.String(), "level=ERROR msg=bad")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{" WARN ", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"verbose", LogLevelInfo},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	require.True(t, IsSensitiveKey("Authorization"))
	require.True(t, IsSensitiveKey("db_password"))
	require.False(t, IsSensitiveKey("user"))
}

func TestFilterSensitiveArgsOddLength(t *testing.T) {
	got := filterSensitiveArgs([]any{"secret", "x", "dangling"})
	require.Equal(t, []any{"secret", "[REDACTED]", "dangling"}, got)
}

func TestLevelMethods(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Level: LogLevelWarn, Format: "text", Output: &buf})

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	require.NotContains(t, buf.String(), "msg=d")
	require.NotContains(t, buf.String(), "msg=i")
	require.Contains(t, buf.String(), "level=WARN msg=w")
	require.Contains(t, buf.String(), "level=ERROR msg=e")

	require.NotPanics(t, func() {
		var nop Logger = NopLogger{}
		nop.Debug("x")
		nop.Info("x")
		nop.Warn("x")
		nop.Error("x")
	})
}
