package snapshot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"course-records-backend/config"
	"course-records-backend/internal/app"
)

type countingSaver struct {
	calls atomic.Int32
	err   error
}

func (c *countingSaver) Snapshot(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestService_RunSavesPeriodically(t *testing.T) {
	saver := &countingSaver{}
	svc := NewService(config.SnapshotConfig{Enabled: true, Interval: 10 * time.Millisecond}, saver, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return saver.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("snapshot service did not stop")
	}
}

func TestService_Disabled(t *testing.T) {
	saver := &countingSaver{}
	svc := NewService(config.SnapshotConfig{Enabled: false, Interval: time.Millisecond}, saver, zap.NewNop())

	svc.Run(context.Background())
	assert.Equal(t, int32(0), saver.calls.Load())
}

func TestService_SaveOnce(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	saver := &countingSaver{}
	svc := NewService(config.SnapshotConfig{}, saver, zap.New(core))

	assert.True(t, svc.SaveOnce(context.Background()))

	saver.err = errors.New("disk full")
	assert.False(t, svc.SaveOnce(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("snapshot failed").Len())

	saver.err = context.Canceled
	assert.False(t, svc.SaveOnce(context.Background()))
	assert.Equal(t, 1, logs.Len(), "cancellation is not logged as a failure")
}

func TestService_SaveOnceSkipsUnloadedSource(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	saver := &countingSaver{err: app.ErrSourceNotLoaded}
	svc := NewService(config.SnapshotConfig{}, saver, zap.New(core))

	assert.False(t, svc.SaveOnce(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("snapshot skipped").Len())
	assert.Equal(t, 0, logs.FilterMessage("snapshot failed").Len())
}
