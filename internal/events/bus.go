package events

import (
	"fmt"
	"sync"
)

// Bus is a synchronous in-process implementation of EventBus. Handlers run on
// the publishing goroutine, so a snapshot and its derived state are observed
// together with no delivery window in between.
type Bus struct {
	mu     sync.RWMutex
	subs   map[EventType][]Subscription
	all    []Subscription
	nextID uint64
	closed bool
}

// NewBus creates a new empty event bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[EventType][]Subscription),
	}
}

// Publish delivers the event to all subscribers of its type, then to
// subscribe-all handlers, in subscription order. Publishing on a closed bus
// is a no-op.
func (b *Bus) Publish(event Event) {
	if event == nil {
		return
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	typed := make([]Subscription, len(b.subs[event.Type()]))
	copy(typed, b.subs[event.Type()])
	all := make([]Subscription, len(b.all))
	copy(all, b.all)
	b.mu.RUnlock()

	for _, sub := range typed {
		if IsActive(sub) {
			if handler := GetHandler(sub); handler != nil {
				handler(event)
			}
		}
	}
	for _, sub := range all {
		if IsActive(sub) {
			if handler := GetHandler(sub); handler != nil {
				handler(event)
			}
		}
	}
}

// Subscribe registers a handler for a specific event type.
func (b *Bus) Subscribe(eventType EventType, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := NewSubscription(b.newID(), eventType, handler, b)
	if b.closed {
		Deactivate(sub)
		return sub
	}
	b.subs[eventType] = append(b.subs[eventType], sub)
	return sub
}

// SubscribeAll registers a handler that receives every published event.
func (b *Bus) SubscribeAll(handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := NewSubscription(b.newID(), "", handler, b)
	if b.closed {
		Deactivate(sub)
		return sub
	}
	b.all = append(b.all, sub)
	return sub
}

// Unsubscribe removes a subscription from the bus.
func (b *Bus) Unsubscribe(subscription Subscription) {
	if subscription == nil {
		return
	}
	Deactivate(subscription)

	b.mu.Lock()
	defer b.mu.Unlock()

	if list, ok := b.subs[subscription.EventType()]; ok {
		b.subs[subscription.EventType()] = removeSub(list, subscription.ID())
	}
	b.all = removeSub(b.all, subscription.ID())
}

// Close deactivates all subscriptions and stops further publishing.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, list := range b.subs {
		for _, sub := range list {
			Deactivate(sub)
		}
	}
	for _, sub := range b.all {
		Deactivate(sub)
	}
	b.subs = make(map[EventType][]Subscription)
	b.all = nil
}

// newID generates a unique subscription identifier. Caller must hold b.mu.
func (b *Bus) newID() string {
	b.nextID++
	return fmt.Sprintf("sub-%d", b.nextID)
}

func removeSub(list []Subscription, id string) []Subscription {
	for i, sub := range list {
		if sub.ID() == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
