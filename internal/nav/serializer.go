package nav

import (
	"sync"
	"time"

	"github.com/benmax/navstack/internal/events"
	"github.com/benmax/navstack/internal/logging"
	"go.uber.org/atomic"
)

// DefaultReplaceRootDelay is the settle window between a root-replacement
// request and the pending entry being staged, letting any in-flight
// animation finish first.
const DefaultReplaceRootDelay = 50 * time.Millisecond

// FocusDismisser clears any active text-input focus. The serializer calls it
// before every accepted mutation; implementations must tolerate being called
// when nothing is focused.
type FocusDismisser interface {
	DismissFocus()
}

// FocusDismisserFunc adapts a plain function to the FocusDismisser interface.
type FocusDismisserFunc func()

// DismissFocus calls the wrapped function.
func (f FocusDismisserFunc) DismissFocus() { f() }

// Serializer funnels every stack mutation onto one goroutine so requests
// from any caller execute one at a time, in submission order. While the
// transitions-blocked flag is set, ordinary operations are dropped outright:
// not queued, not retried. SetRoot and RequestReplaceRoot bypass the drop
// gate; the deferred replace-root is the one request that survives a blocked
// window, applying on the flag's true-to-false edge.
type Serializer struct {
	ctrl    *Controller
	ops     chan func()
	done    chan struct{}
	stopped sync.WaitGroup

	blocked atomic.Bool
	delay   time.Duration

	dismiss FocusDismisser
	bus     events.EventBus
	logger  *logging.Logger

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
}

// SerializerOption configures a Serializer at construction time.
type SerializerOption func(*Serializer)

// WithFocusDismisser sets the collaborator invoked before every accepted
// mutation.
func WithFocusDismisser(dismiss FocusDismisser) SerializerOption {
	return func(s *Serializer) {
		s.dismiss = dismiss
	}
}

// WithReplaceRootDelay overrides the settle delay before a root replacement
// is staged. Values of zero or less stage immediately.
func WithReplaceRootDelay(delay time.Duration) SerializerOption {
	return func(s *Serializer) {
		s.delay = delay
	}
}

// WithSerializerBus sets the event bus blocked-flag edges are published on.
func WithSerializerBus(bus events.EventBus) SerializerOption {
	return func(s *Serializer) {
		s.bus = bus
	}
}

// WithSerializerLogger sets the structured logger.
func WithSerializerLogger(logger *logging.Logger) SerializerOption {
	return func(s *Serializer) {
		if logger != nil {
			s.logger = logger.WithComponent("serializer")
		}
	}
}

// NewSerializer creates a Serializer driving the given controller and starts
// its goroutine. Callers own the lifecycle: Close stops the goroutine when
// the navigation surface is torn down.
func NewSerializer(ctrl *Controller, opts ...SerializerOption) *Serializer {
	s := &Serializer{
		ctrl:   ctrl,
		ops:    make(chan func(), 64),
		done:   make(chan struct{}),
		delay:  DefaultReplaceRootDelay,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.stopped.Add(1)
	go s.loop()
	return s
}

func (s *Serializer) loop() {
	defer s.stopped.Done()
	for {
		select {
		case fn := <-s.ops:
			fn()
		case <-s.done:
			// Drain whatever was accepted before Close; accepted
			// mutations always complete.
			for {
				select {
				case fn := <-s.ops:
					fn()
				default:
					return
				}
			}
		}
	}
}

// enqueue schedules fn on the serializer goroutine, reporting whether it
// was accepted. After Close, requests are discarded. The close-state check
// and the channel send happen under one lock, so an accepted fn is always
// picked up by the loop (or its drain) and a discarded fn is provably never
// run.
func (s *Serializer) enqueue(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.ops <- fn
	return true
}

// sync runs fn on the serializer goroutine and waits for it. When the
// serializer is closed the callback was never queued and fn does not run.
// Must not be called from an event handler, which already runs on that
// goroutine.
func (s *Serializer) sync(fn func()) {
	var wg sync.WaitGroup
	wg.Add(1)
	if !s.enqueue(func() {
		defer wg.Done()
		fn()
	}) {
		return
	}
	wg.Wait()
}

// Submit forwards an operation to the controller on the serializer
// goroutine, preceded by a focus-dismissal request. Returns false when the
// operation was dropped because transitions are blocked.
func (s *Serializer) Submit(op Operation) bool {
	if s.blocked.Load() {
		s.logger.Debug("operation dropped while blocked", "operation", op.name())
		return false
	}
	s.enqueue(func() {
		if s.dismiss != nil {
			s.dismiss.DismissFocus()
		}
		op.apply(s.ctrl)
	})
	return true
}

// SetRoot replaces the stack with a single root entry. Root assignment is
// not gated by the blocked flag.
func (s *Serializer) SetRoot(view View) {
	s.enqueue(func() {
		s.ctrl.SetRoot(view)
	})
}

// RequestReplaceRoot schedules a deferred root replacement: after the settle
// delay the pending entry is staged, and it applies only once the blocked
// flag transitions from true to false.
func (s *Serializer) RequestReplaceRoot(view View) {
	stage := func() {
		s.enqueue(func() {
			s.ctrl.StageRootReplacement(view)
		})
	}
	if s.delay <= 0 {
		stage()
		return
	}
	time.AfterFunc(s.delay, stage)
}

// SetPreferredKind forwards a transition-kind override. The override only
// touches derived state, so it is not gated by the blocked flag.
func (s *Serializer) SetPreferredKind(kind TransitionKind) {
	s.enqueue(func() {
		s.ctrl.SetPreferredKind(kind)
	})
}

// SetBlocked sets the transitions-blocked flag. A true-to-false edge
// triggers reconciliation: a pending root replacement, if any, is applied
// and cleared. Redundant sets are no-ops.
func (s *Serializer) SetBlocked(blocked bool) {
	was := s.blocked.Swap(blocked)
	if was == blocked {
		return
	}
	s.enqueue(func() {
		if s.bus != nil {
			s.bus.Publish(NewBlockedChangedEvent(blocked))
		}
		if was && !blocked {
			s.ctrl.ApplyPendingRoot()
		}
	})
}

// Blocked reports the current transitions-blocked flag.
func (s *Serializer) Blocked() bool {
	return s.blocked.Load()
}

// Snapshot returns the current entries and derived state, read on the
// serializer goroutine so the pair is consistent.
func (s *Serializer) Snapshot() ([]StackEntry, DerivedState) {
	var entries []StackEntry
	var derived DerivedState
	s.sync(func() {
		entries = s.ctrl.Entries()
		derived = s.ctrl.Derived()
	})
	return entries, derived
}

// Barrier blocks until every previously submitted request has executed.
func (s *Serializer) Barrier() {
	s.sync(func() {})
}

// Close drains accepted requests and stops the serializer goroutine. The
// closed flag is set before done is signalled so no request can slip into
// the queue after the drain.
func (s *Serializer) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.done)
	})
	s.stopped.Wait()
}
