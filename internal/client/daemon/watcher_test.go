package daemon

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (f *fakeChecker) Health(ctx context.Context) error {
	f.calls.Add(1)
	if f.fail.Load() {
		return ErrUnhealthy
	}
	return nil
}

func recv(t *testing.T, ch <-chan Status) Status {
	t.Helper()
	select {
	case st, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("no status within timeout")
		return Status{}
	}
}

func TestWatcher_ChecksImmediatelyAndOnInterval(t *testing.T) {
	fc := &fakeChecker{}
	w := NewWatcher(fc, 20*time.Millisecond)
	defer w.Stop()

	ch := w.Start(context.Background())

	st := recv(t, ch)
	require.True(t, st.Healthy)
	require.NoError(t, st.Err)

	fc.fail.Store(true)
	require.Eventually(t, func() bool {
		st := recv(t, ch)
		return !st.Healthy && errors.Is(st.Err, ErrUnhealthy)
	}, 2*time.Second, time.Millisecond)
}

func TestWatcher_StopClosesChannelAndHalts(t *testing.T) {
	fc := &fakeChecker{}
	w := NewWatcher(fc, 10*time.Millisecond)

	ch := w.Start(context.Background())
	recv(t, ch)

	w.Stop()
	w.Stop()

	for range ch {
	}

	n := fc.calls.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, n, fc.calls.Load(), "no checks after Stop")
}

func TestWatcher_ContextCancelCloses(t *testing.T) {
	w := NewWatcher(&fakeChecker{}, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	ch := w.Start(ctx)
	recv(t, ch)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			_, ok = <-ch
		}
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcher_SlowConsumerSeesLatest(t *testing.T) {
	fc := &fakeChecker{}
	w := NewWatcher(fc, 5*time.Millisecond)
	defer w.Stop()

	ch := w.Start(context.Background())
	require.Eventually(t, func() bool { return fc.calls.Load() >= 5 }, 2*time.Second, time.Millisecond)

	fc.fail.Store(true)
	require.Eventually(t, func() bool { return fc.calls.Load() >= 10 }, 2*time.Second, time.Millisecond)

	st := recv(t, ch)
	if st.Healthy {
		st = recv(t, ch)
	}
	require.False(t, st.Healthy)
}
