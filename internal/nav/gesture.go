package nav

import (
	"github.com/benmax/navstack/internal/events"
)

// GestureSnapshot is the transition metadata captured when an interactive
// back gesture begins. The values stay fixed for the gesture's duration even
// if the stack mutates underneath; callers re-snapshot explicitly to observe
// newer state.
type GestureSnapshot struct {
	Animation  Animation
	Capability GestureCapability
}

// GestureCoordinator reads top-of-stack transition metadata for the
// gesture's visual driver. It never mutates the stack.
type GestureCoordinator struct {
	serializer *Serializer
	bus        events.EventBus
}

// NewGestureCoordinator creates a coordinator reading through the given
// serializer. The bus is optional; when set, a GestureStartedEvent is
// published for each capture.
func NewGestureCoordinator(serializer *Serializer, bus events.EventBus) *GestureCoordinator {
	return &GestureCoordinator{
		serializer: serializer,
		bus:        bus,
	}
}

// OnGestureStart captures the current top entry's animation and gesture
// capability. The read runs on the serializer goroutine so it cannot tear
// against an in-flight mutation; the returned snapshot is a value and is
// immune to later stack changes. The call waits on the serializer, so it
// must not run on a goroutine the serializer's own publishes can block on
// (such as a UI update loop consuming published events).
func (g *GestureCoordinator) OnGestureStart() GestureSnapshot {
	var snapshot GestureSnapshot
	g.serializer.sync(func() {
		snapshot = g.serializer.ctrl.GestureReadout()
		if g.bus != nil {
			g.bus.Publish(NewGestureStartedEvent(snapshot))
		}
	})
	return snapshot
}
