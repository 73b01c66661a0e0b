package nav

import "github.com/benmax/navstack/internal/events"

// StackChangedEvent is published after every entries change, carrying the
// new snapshot together with the derived state that was recomputed for it.
// Handlers run on the serializer goroutine, so the pair is never observed
// torn.
type StackChangedEvent struct {
	events.BaseEvent
	Entries []StackEntry // Copied snapshot, ordered root first
	Derived DerivedState
}

// NewStackChangedEvent creates a new StackChangedEvent. The entries slice is
// copied so later mutations cannot reach a delivered snapshot.
func NewStackChangedEvent(entries []StackEntry, derived DerivedState) *StackChangedEvent {
	snapshot := make([]StackEntry, len(entries))
	copy(snapshot, entries)
	return &StackChangedEvent{
		BaseEvent: events.NewBaseEvent(events.TypeStackChanged),
		Entries:   snapshot,
		Derived:   derived,
	}
}

// RootReplacedEvent is published when a deferred root replacement applies.
type RootReplacedEvent struct {
	events.BaseEvent
	Identity string // Identity of the new root view
}

// NewRootReplacedEvent creates a new RootReplacedEvent.
func NewRootReplacedEvent(identity string) *RootReplacedEvent {
	return &RootReplacedEvent{
		BaseEvent: events.NewBaseEvent(events.TypeRootReplaced),
		Identity:  identity,
	}
}

// BlockedChangedEvent is published on every edge of the transitions-blocked
// flag.
type BlockedChangedEvent struct {
	events.BaseEvent
	Blocked bool
}

// NewBlockedChangedEvent creates a new BlockedChangedEvent.
func NewBlockedChangedEvent(blocked bool) *BlockedChangedEvent {
	return &BlockedChangedEvent{
		BaseEvent: events.NewBaseEvent(events.TypeBlockedChanged),
		Blocked:   blocked,
	}
}

// GestureStartedEvent is published when an interactive back gesture begins,
// carrying the metadata captured for the gesture's visual driver.
type GestureStartedEvent struct {
	events.BaseEvent
	Snapshot GestureSnapshot
}

// NewGestureStartedEvent creates a new GestureStartedEvent.
func NewGestureStartedEvent(snapshot GestureSnapshot) *GestureStartedEvent {
	return &GestureStartedEvent{
		BaseEvent: events.NewBaseEvent(events.TypeGestureStarted),
		Snapshot:  snapshot,
	}
}
