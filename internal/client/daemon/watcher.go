package daemon

import (
	"context"
	"sync"
	"time"
)

// HealthChecker is satisfied by *Client.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Status is one health observation.
type Status struct {
	Healthy bool
	Err     error
	At      time.Time
}

// Watcher polls a HealthChecker on a caller-supplied interval. Nothing runs
// until Start; polling ends on Stop or when the Start context is done.
type Watcher struct {
	checker  HealthChecker
	interval time.Duration
	timeout  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWatcher(checker HealthChecker, interval time.Duration) *Watcher {
	timeout := interval
	if timeout > 3*time.Second {
		timeout = 3 * time.Second
	}
	return &Watcher{checker: checker, interval: interval, timeout: timeout}
}

// Start checks immediately and then once per interval. The returned channel
// holds at most one pending status; a consumer that falls behind sees the
// latest one. It is closed when the watcher stops. Calling Start on a
// running watcher restarts it.
func (w *Watcher) Start(ctx context.Context) <-chan Status {
	w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Status, 1)
	done := make(chan struct{})

	w.mu.Lock()
	w.cancel, w.done = cancel, done
	w.mu.Unlock()

	go func() {
		defer close(done)
		defer close(out)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			w.check(ctx, out)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}

func (w *Watcher) check(ctx context.Context, out chan Status) {
	pctx, cancel := context.WithTimeout(ctx, w.timeout)
	err := w.checker.Health(pctx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	st := Status{Healthy: err == nil, Err: err, At: time.Now()}
	for {
		select {
		case out <- st:
			return
		default:
		}
		// Drop the stale status so the newest one fits.
		select {
		case <-out:
		default:
		}
	}
}

// Stop halts polling and waits for the poller to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
