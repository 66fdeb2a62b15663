package goroutine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/shared/logger"
)

type entry struct {
	level string
	msg   string
	kv    []any
}

type recordingLogger struct {
	logger.Interface
	entries chan entry
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Interface: logger.NewNopLogger(), entries: make(chan entry, 4)}
}

func (l *recordingLogger) Warnw(msg string, kv ...interface{}) {
	l.entries <- entry{level: "warn", msg: msg, kv: kv}
}

func (l *recordingLogger) Errorw(msg string, kv ...interface{}) {
	l.entries <- entry{level: "error", msg: msg, kv: kv}
}

func (l *recordingLogger) next(t *testing.T) entry {
	t.Helper()
	select {
	case e := <-l.entries:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no log entry")
		return entry{}
	}
}

func TestGo_LogsReturnedError(t *testing.T) {
	log := newRecordingLogger()

	Go(log, "publish", time.Second, func(ctx context.Context) error {
		return errors.New("redis down")
	}, "account_no", "0001")

	e := log.next(t)
	assert.Equal(t, "warn", e.level)
	assert.Equal(t, "publish failed", e.msg)
	assert.Contains(t, e.kv, "0001")
}

func TestGo_RecoversPanic(t *testing.T) {
	log := newRecordingLogger()

	Go(log, "publish", time.Second, func(ctx context.Context) error {
		panic("boom")
	})

	e := log.next(t)
	assert.Equal(t, "error", e.level)
	assert.Equal(t, "goroutine panicked", e.msg)
}

func TestGo_ContextExpires(t *testing.T) {
	log := newRecordingLogger()

	Go(log, "publish", 20*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	e := log.next(t)
	require.Equal(t, "warn", e.level)
	assert.Contains(t, e.kv, context.DeadlineExceeded)
}
