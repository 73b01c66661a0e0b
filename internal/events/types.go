// Package events provides the event system used to deliver navigation
// snapshots and state changes to observers. It defines the event contract and
// a synchronous in-process bus so the rendering layer can subscribe to stack
// updates without coupling to the navigation core's internals.
package events

import (
	"sync"
	"time"
)

// EventType represents the type identifier for events.
// Using string type allows for easy debugging and extensibility.
type EventType string

const (
	// TypeStackChanged indicates the navigation stack produced a new snapshot
	TypeStackChanged EventType = "stack.changed"
	// TypeRootReplaced indicates a deferred root replacement was applied
	TypeRootReplaced EventType = "stack.root_replaced"
	// TypeBlockedChanged indicates the transitions-blocked flag flipped
	TypeBlockedChanged EventType = "stack.blocked_changed"
	// TypeGestureStarted indicates an interactive back gesture began
	TypeGestureStarted EventType = "gesture.started"
)

// Event is the interface that all events must implement.
// It provides a minimal contract for event identification and timing.
type Event interface {
	// Type returns the event type identifier
	Type() EventType
	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// BaseEvent provides common fields for all events.
// Concrete event types should embed this struct.
type BaseEvent struct {
	eventType EventType
	timestamp time.Time
}

// Type returns the event type identifier
func (e *BaseEvent) Type() EventType {
	return e.eventType
}

// Timestamp returns when the event occurred
func (e *BaseEvent) Timestamp() time.Time {
	return e.timestamp
}

// NewBaseEvent creates a new BaseEvent with the current timestamp
func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Subscription represents an active event subscription.
// It provides a way to identify and manage subscriptions.
type Subscription interface {
	// ID returns a unique identifier for this subscription
	ID() string
	// EventType returns the event type this subscription is listening for
	EventType() EventType
	// Unsubscribe removes this subscription from the event bus
	Unsubscribe()
}

// Handler is a function that handles an event
type Handler func(Event)

// EventBus defines the interface for publishing and subscribing to events.
// Implementations should be thread-safe.
type EventBus interface {
	// Publish sends an event to all subscribers of that event type.
	Publish(event Event)

	// Subscribe registers a handler for a specific event type.
	// Returns a Subscription that can be used to unsubscribe.
	Subscribe(eventType EventType, handler Handler) Subscription

	// SubscribeAll registers a handler for all event types.
	// Returns a Subscription that can be used to unsubscribe.
	SubscribeAll(handler Handler) Subscription

	// Unsubscribe removes a subscription.
	// After calling this, the handler will no longer receive events.
	Unsubscribe(subscription Subscription)

	// Close shuts down the event bus and releases resources.
	// After Close is called, Publish and Subscribe will have no effect.
	Close()
}

// subscription implements the Subscription interface
type subscription struct {
	id        string
	eventType EventType
	handler   Handler
	bus       EventBus
	mu        sync.Mutex
	active    bool
}

// ID returns the subscription's unique identifier
func (s *subscription) ID() string {
	return s.id
}

// EventType returns the event type this subscription is for
func (s *subscription) EventType() EventType {
	return s.eventType
}

// Unsubscribe removes this subscription from the event bus
func (s *subscription) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active && s.bus != nil {
		s.bus.Unsubscribe(s)
		s.active = false
	}
}

// NewSubscription creates a new subscription (for use by EventBus implementations)
func NewSubscription(id string, eventType EventType, handler Handler, bus EventBus) Subscription {
	return &subscription{
		id:        id,
		eventType: eventType,
		handler:   handler,
		bus:       bus,
		active:    true,
	}
}

// GetHandler returns the handler function (for use by EventBus implementations)
func GetHandler(s Subscription) Handler {
	if sub, ok := s.(*subscription); ok {
		return sub.handler
	}
	return nil
}

// IsActive returns whether the subscription is still active
func IsActive(s Subscription) bool {
	if sub, ok := s.(*subscription); ok {
		sub.mu.Lock()
		defer sub.mu.Unlock()
		return sub.active
	}
	return false
}

// Deactivate marks a subscription as inactive (for use by EventBus implementations)
func Deactivate(s Subscription) {
	if sub, ok := s.(*subscription); ok {
		sub.mu.Lock()
		defer sub.mu.Unlock()
		sub.active = false
	}
}
