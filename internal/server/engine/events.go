package engine

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

const defaultSubscriberBuffer = 64

// Bus fans committed events out to subscribers. A subscriber that falls a
// full buffer behind is dropped and its channel closed; it can resubscribe
// and reconcile through PurchasesOf.
type Bus struct {
	mu     sync.Mutex
	subs   map[chan models.Event]struct{}
	buffer int
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Bus{subs: make(map[chan models.Event]struct{}), buffer: buffer}
}

// Subscribe returns a channel of events committed after the call. The
// channel is closed when ctx is done or the subscriber is dropped.
func (b *Bus) Subscribe(ctx context.Context) <-chan models.Event {
	ch := make(chan models.Event, b.buffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(ch)
	}()
	return ch
}

func (b *Bus) remove(ch chan models.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

func (b *Bus) publish(ev models.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			delete(b.subs, ch)
			close(ch)
		}
	}
}

// Subscribers reports the number of live subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
