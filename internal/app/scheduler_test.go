package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessions struct {
	mu      sync.Mutex
	dropped []int64
	left    int
	sweeps  int
}

func (f *fakeSessions) Sweep(time.Duration) []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sweeps++
	out := f.dropped
	f.dropped = nil
	return out
}

func (f *fakeSessions) Len() int { return f.left }

type fakeAssistants struct {
	unmounted []int64
}

func (f *fakeAssistants) Unmount(chatID int64) {
	f.unmounted = append(f.unmounted, chatID)
}

type fakeDialogs struct {
	cleared []int64
}

func (f *fakeDialogs) ClearState(chatID int64) {
	f.cleared = append(f.cleared, chatID)
}

type fakeGauge struct {
	value int
}

func (f *fakeGauge) SetActiveSessions(n int) { f.value = n }

func TestSweepOnceClearsDroppedChats(t *testing.T) {
	sessions := &fakeSessions{dropped: []int64{7, 9}, left: 2}
	assistants := &fakeAssistants{}
	dialogs := &fakeDialogs{}
	gauge := &fakeGauge{}

	s := NewScheduler(sessions, assistants, dialogs, gauge, time.Hour, zap.NewNop())

	assert.Equal(t, 2, s.SweepOnce())
	assert.Equal(t, []int64{7, 9}, assistants.unmounted)
	assert.Equal(t, []int64{7, 9}, dialogs.cleared)
	assert.Equal(t, 2, gauge.value)

	assert.Zero(t, s.SweepOnce())
}

func TestSchedulerInterval(t *testing.T) {
	s := NewScheduler(&fakeSessions{}, &fakeAssistants{}, &fakeDialogs{}, &fakeGauge{}, 12*time.Hour, zap.NewNop())
	assert.Equal(t, time.Minute, s.interval)

	s = NewScheduler(&fakeSessions{}, &fakeAssistants{}, &fakeDialogs{}, &fakeGauge{}, 40*time.Second, zap.NewNop())
	assert.Equal(t, 10*time.Second, s.interval)
}

func TestSchedulerStops(t *testing.T) {
	s := NewScheduler(&fakeSessions{}, &fakeAssistants{}, &fakeDialogs{}, &fakeGauge{}, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.runSweepTask(ctx)
		close(done)
	}()

	s.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestNewLoggerForTests(t *testing.T) {
	logger := NewLogger("test")
	assert.NotNil(t, logger)
	logger.Info("discarded")
}
