package coordinator

import (
	"sync"

	"cosmossdk.io/log"

	"github.com/crossgov/crossgov-core/poll"
)

const subscriberBuffer = 1000

// Bus fans registry events out to filtered subscribers. Events are
// observability signals, so a subscriber that falls behind has events
// dropped rather than blocking the registry.
type Bus struct {
	mu            sync.RWMutex
	subscriptions []subscription
	closed        bool
	logger        log.Logger
}

type subscription struct {
	filter func(event poll.Event) bool
	events chan poll.Event
}

var _ poll.Notifier = &Bus{}

// NewBus returns a new event bus
func NewBus(logger log.Logger) *Bus {
	return &Bus{logger: logger.With("component", "event_bus")}
}

// Publish delivers the event to every subscriber whose filter matches
func (b *Bus) Publish(event poll.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, sub := range b.subscriptions {
		if !sub.filter(event) {
			continue
		}

		select {
		case sub.events <- event:
		default:
			b.logger.Warn("subscriber is not keeping up, dropping event")
		}
	}
}

// Subscribe returns a channel receiving all events that match the given filter
func (b *Bus) Subscribe(filter func(event poll.Event) bool) <-chan poll.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := subscription{filter: filter, events: make(chan poll.Event, subscriberBuffer)}
	b.subscriptions = append(b.subscriptions, sub)

	return sub.events
}

// Close closes all subscriber channels. Publish becomes a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	for _, sub := range b.subscriptions {
		close(sub.events)
	}
}
