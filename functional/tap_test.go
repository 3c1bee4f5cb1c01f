package functional

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/stretchr/testify/require"
)

type panickyLogger struct{}

func (panickyLogger) Info(string, ...any)  { panic("sink down") }
func (panickyLogger) Error(string, ...any) { panic("sink down") }

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestDoOnNext(t *testing.T) {
	t.Run("observes success only", func(t *testing.T) {
		var seen []int
		r := Ok(1).DoOnNext(func(v int) { seen = append(seen, v) })
		Errf[int]("x").DoOnNext(func(v int) { seen = append(seen, v) })
		require.Equal(t, Ok(1), r)
		require.Equal(t, []int{1}, seen)
	})

	t.Run("panics do not change the outcome", func(t *testing.T) {
		r := Ok(1).DoOnNext(func(int) { panic("boom") })
		require.Equal(t, Ok(1), r)
	})
}

func TestDoOnError(t *testing.T) {
	t.Run("observes failure only", func(t *testing.T) {
		err := errors.New("boom")
		var seen []error
		r := Err[int](err).DoOnError(func(e error) { seen = append(seen, e) })
		Ok(1).DoOnError(func(e error) { seen = append(seen, e) })
		require.True(t, r.Err() == err)
		require.Len(t, seen, 1)
		require.True(t, seen[0] == err)
	})

	t.Run("panics do not change the outcome", func(t *testing.T) {
		err := errors.New("boom")
		r := Err[int](err).DoOnError(func(error) { panic("again") })
		require.True(t, r.Err() == err)
	})
}

func TestLogTaps(t *testing.T) {
	t.Run("LogNext", func(t *testing.T) {
		l, buf := newBufferLogger()
		Ok(5).LogNext(l)
		require.Contains(t, buf.String(), "msg=5")
		require.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("LogNextPrefix with selector", func(t *testing.T) {
		l, buf := newBufferLogger()
		Ok(5).LogNextPrefix(l, "value: ", func(v int) any { return v * 2 })
		require.Contains(t, buf.String(), `msg="value: 10"`)
	})

	t.Run("LogError includes the code", func(t *testing.T) {
		l, buf := newBufferLogger()
		None[int]().AsResult().LogError(l)
		require.Contains(t, buf.String(), "level=ERROR")
		require.Contains(t, buf.String(), "code=VALUE_UNAVAILABLE")
	})

	t.Run("LogErrorPrefix", func(t *testing.T) {
		l, buf := newBufferLogger()
		Errf[int]("boom").LogErrorPrefix(l, "failed: ", nil)
		require.Contains(t, buf.String(), `msg="failed: boom"`)
	})

	t.Run("taps on the other branch log nothing", func(t *testing.T) {
		l, buf := newBufferLogger()
		Ok(5).LogError(l)
		Errf[int]("x").LogNext(l)
		require.Empty(t, buf.String())
	})

	t.Run("nil loggers fall back to the default", func(t *testing.T) {
		l, buf := newBufferLogger()
		previous := slog.Default()
		slog.SetDefault(l)
		t.Cleanup(func() { slog.SetDefault(previous) })

		var typedNil *slog.Logger
		Ok(1).LogNext(nil)
		Ok(2).LogNext(typedNil)
		require.Contains(t, buf.String(), "msg=1")
		require.Contains(t, buf.String(), "msg=2")
	})

	t.Run("logger panics are swallowed", func(t *testing.T) {
		require.Equal(t, Ok(5), Ok(5).LogNext(panickyLogger{}))
		require.True(t, apperrors.IsCode(None[int]().AsResult().LogError(panickyLogger{}).Err(), apperrors.ErrCodeValueUnavailable))
	})
}
