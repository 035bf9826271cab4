package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rl1809/kata/internal/adapter/timer"
	"github.com/rl1809/kata/internal/core/domain"
	"github.com/rl1809/kata/internal/port"
)

// Mock Scheduler
type mockScheduler struct {
	mu     sync.Mutex
	delays []time.Duration
	funcs  []func()
}

type mockTimer struct{}

func (mockTimer) Stop() bool { return false }

func (m *mockScheduler) AfterFunc(d time.Duration, f func()) port.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays = append(m.delays, d)
	m.funcs = append(m.funcs, f)
	return mockTimer{}
}

func (m *mockScheduler) fireAll() {
	m.mu.Lock()
	funcs := m.funcs
	m.funcs = nil
	m.mu.Unlock()

	for _, f := range funcs {
		f()
	}
}

func TestSquareAsync_FulfilsAfterDelay(t *testing.T) {
	sched := &mockScheduler{}
	sq := NewSquarer(sched, 0, zap.NewNop())

	f := sq.SquareAsync(5)

	require.Equal(t, []time.Duration{DefaultSquareDelay}, sched.delays)
	assert.False(t, f.Settled(), "future must stay pending until the timer fires")

	sched.fireAll()

	got, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)
}

func TestSquareAsync_RejectsImmediately(t *testing.T) {
	for _, n := range []float64{-1, 0} {
		sched := &mockScheduler{}
		sq := NewSquarer(sched, time.Second, nil)

		f := sq.SquareAsync(n)

		assert.True(t, f.Settled(), "rejection must not wait for the delay (n=%v)", n)
		assert.Empty(t, sched.delays, "nothing may be scheduled for n=%v", n)

		_, err := f.Await(context.Background())
		require.True(t, errors.Is(err, domain.ErrNegativeInput))
		assert.Equal(t, "Negative number is not allowed", err.Error())
	}
}

func TestSquareAsync_CustomDelay(t *testing.T) {
	sched := &mockScheduler{}
	sq := NewSquarer(sched, 250*time.Millisecond, nil)

	sq.SquareAsync(3)

	assert.Equal(t, []time.Duration{250 * time.Millisecond}, sched.delays)
	assert.Equal(t, 250*time.Millisecond, sq.Delay())
}

func TestSquareAsync_AwaitContextEnds(t *testing.T) {
	sched := &mockScheduler{}
	sq := NewSquarer(sched, time.Second, nil)
	f := sq.SquareAsync(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// the computation still completes
	sched.fireAll()
	got, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

func TestSquareAsync_WallClock(t *testing.T) {
	sq := NewSquarer(timer.NewWallScheduler(), 30*time.Millisecond, nil)

	start := time.Now()
	got, err := sq.SquareAsync(1.5).Await(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 2.25, got)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)

	start = time.Now()
	_, err = sq.SquareAsync(-1).Await(context.Background())
	assert.ErrorIs(t, err, domain.ErrNegativeInput)
	assert.Less(t, time.Since(start), 30*time.Millisecond)
}

func TestFuture_ResolvesOnce(t *testing.T) {
	f := newFuture[int]()
	f.fulfill(1)
	f.reject(errors.New("late"))
	f.fulfill(2)

	got, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	select {
	case <-f.Done():
	default:
		t.Error("Done channel should be closed")
	}
}
