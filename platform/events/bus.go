package events

import (
	"context"
	"sync"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
)

// InMemoryBus is a simple in-process event bus. Handlers registered for an
// event name are invoked for every published event of that name.
// Publish runs handlers on their own goroutine so publishers are never
// blocked by slow subscribers.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the given event name.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish delivers the event to all subscribed handlers asynchronously.
// Handler errors are logged, not propagated.
func (b *InMemoryBus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	subscribed := make([]Handler, len(b.handlers[event.EventName()]))
	copy(subscribed, b.handlers[event.EventName()])
	b.mu.RUnlock()

	for _, h := range subscribed {
		handler := h
		go func() {
			if err := handler.Handle(ctx, event); err != nil && b.log != nil {
				b.log.Error("event handler failed",
					"event", event.EventName(),
					"error", err,
				)
			}
		}()
	}
}

// PublishSync delivers the event to all subscribed handlers in order and
// returns the first handler error encountered.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	b.mu.RLock()
	subscribed := make([]Handler, len(b.handlers[event.EventName()]))
	copy(subscribed, b.handlers[event.EventName()])
	b.mu.RUnlock()

	for _, h := range subscribed {
		if err := h.Handle(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Compile-time check that InMemoryBus implements Bus.
var _ Bus = (*InMemoryBus)(nil)
