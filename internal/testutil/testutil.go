// Package testutil provides testing utilities for navstack tests: canned
// views, a recording focus dismisser, and a snapshot-collecting subscriber.
package testutil

import (
	"sync"

	"github.com/benmax/navstack/internal/events"
	"github.com/benmax/navstack/internal/nav"
)

// View is a minimal nav.View for tests.
type View struct {
	ID   string
	Conf nav.ViewConfig
}

// Identity implements nav.View.
func (v View) Identity() string { return v.ID }

// Config implements nav.View.
func (v View) Config() nav.ViewConfig { return v.Conf }

// NewView returns a test view with the given identity and configuration.
func NewView(id string, animation nav.Animation, gesture nav.GestureCapability) View {
	return View{
		ID:   id,
		Conf: nav.ViewConfig{Animation: animation, BackGesture: gesture},
	}
}

// FocusRecorder records focus-dismissal requests from the serializer.
type FocusRecorder struct {
	mu    sync.Mutex
	calls int
}

// DismissFocus implements nav.FocusDismisser.
func (f *FocusRecorder) DismissFocus() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

// Calls returns how many times focus dismissal was requested.
func (f *FocusRecorder) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// SnapshotCollector subscribes to stack-changed events and retains every
// published snapshot in order.
type SnapshotCollector struct {
	mu        sync.Mutex
	snapshots []*nav.StackChangedEvent
}

// Collect subscribes the collector to the bus and returns it.
func Collect(bus events.EventBus) *SnapshotCollector {
	c := &SnapshotCollector{}
	bus.Subscribe(events.TypeStackChanged, func(e events.Event) {
		if ev, ok := e.(*nav.StackChangedEvent); ok {
			c.mu.Lock()
			c.snapshots = append(c.snapshots, ev)
			c.mu.Unlock()
		}
	})
	return c
}

// Snapshots returns the collected events in publication order.
func (c *SnapshotCollector) Snapshots() []*nav.StackChangedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*nav.StackChangedEvent, len(c.snapshots))
	copy(out, c.snapshots)
	return out
}

// Last returns the most recent snapshot, or nil when none was published.
func (c *SnapshotCollector) Last() *nav.StackChangedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.snapshots) == 0 {
		return nil
	}
	return c.snapshots[len(c.snapshots)-1]
}
