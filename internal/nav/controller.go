package nav

import (
	"github.com/benmax/navstack/internal/events"
	"github.com/benmax/navstack/internal/logging"
)

// Controller owns the ordered sequence of active stack entries and the
// transition metadata derived from it. It has no synchronization of its own:
// every method must run on the serializer goroutine, which is the only
// mutator. Construct one per navigation surface and inject it; there is no
// process-wide instance.
type Controller struct {
	entries     []StackEntry
	kind        TransitionKind
	animation   Animation
	backGesture GestureCapability
	pendingRoot *StackEntry

	policy InsertPolicy
	bus    events.EventBus
	logger *logging.Logger
}

// ControllerOption configures a Controller at construction time.
type ControllerOption func(*Controller)

// WithInsertPolicy sets the predicate consulted before every insert.
func WithInsertPolicy(policy InsertPolicy) ControllerOption {
	return func(c *Controller) {
		if policy != nil {
			c.policy = policy
		}
	}
}

// WithBus sets the event bus snapshots are published on.
func WithBus(bus events.EventBus) ControllerOption {
	return func(c *Controller) {
		c.bus = bus
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *logging.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger.WithComponent("controller")
		}
	}
}

// NewController creates a Controller with an empty stack. The initial
// transition kind is push.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		kind:        TransitionPush,
		animation:   AnimationNone,
		backGesture: GestureDisabled,
		policy:      PermitAll,
		logger:      logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Entries returns a copy of the current snapshot, ordered root first.
func (c *Controller) Entries() []StackEntry {
	snapshot := make([]StackEntry, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot
}

// Len returns the current stack depth.
func (c *Controller) Len() int {
	return len(c.entries)
}

// Kind returns the transition kind derived from the most recent mutation.
func (c *Controller) Kind() TransitionKind {
	return c.kind
}

// ActiveAnimation returns the animation selected for the most recent
// transition.
func (c *Controller) ActiveAnimation() Animation {
	return c.animation
}

// BackGesture returns the gesture capability declared by the current top
// entry.
func (c *Controller) BackGesture() GestureCapability {
	return c.backGesture
}

// Derived returns the full derived state for the current snapshot.
func (c *Controller) Derived() DerivedState {
	return DerivedState{Kind: c.kind, Animation: c.animation, BackGesture: c.backGesture}
}

// SetRoot replaces the stack with exactly one entry wrapping view, inserted
// without animation. Setting the root is not a transition: kind and
// animation are left untouched, only the gesture capability follows the new
// top. Always succeeds, even while transitions are blocked.
func (c *Controller) SetRoot(view View) {
	entry := newEntry(view, AnimationNone)
	c.entries = []StackEntry{entry}
	c.backGesture = selectGesture(c.entries)
	c.logger.Debug("root set", "view", entry.Identity())
	c.publishSnapshot()
}

// Insert appends a new entry for view with the given animation, unless the
// insert policy rejects it.
func (c *Controller) Insert(view View, animation Animation) {
	if !c.policy(c.entries, view) {
		c.logger.Debug("insert rejected by policy", "view", view.Identity())
		return
	}
	next := make([]StackEntry, len(c.entries), len(c.entries)+1)
	copy(next, c.entries)
	next = append(next, newEntry(view, animation))
	c.commit(next)
}

// RemoveLast pops the top entry. The root is never removable by this path:
// a stack of one entry is left unchanged.
func (c *Controller) RemoveLast() {
	if len(c.entries) <= 1 {
		return
	}
	c.commit(c.entries[:len(c.entries)-1])
}

// RemoveAllUpTo pops from the end until and including the entry whose
// identity matches, truncating the stack to end just before it. No-op when
// nothing matches or when the match is the root.
func (c *Controller) RemoveAllUpTo(identity string) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Identity() != identity {
			continue
		}
		if i == 0 {
			// Truncating through the root would empty the stack.
			return
		}
		c.commit(c.entries[:i])
		return
	}
}

// RemoveAllExceptRoot truncates the stack to its root entry.
func (c *Controller) RemoveAllExceptRoot() {
	if len(c.entries) <= 1 {
		return
	}
	c.commit(c.entries[:1])
}

// SetPreferredKind overrides the transition kind directly. Only push and pop
// are accepted; redundant re-sets are no-ops.
func (c *Controller) SetPreferredKind(kind TransitionKind) {
	if kind != TransitionPush && kind != TransitionPop {
		return
	}
	if kind == c.kind {
		return
	}
	c.kind = kind
}

// StageRootReplacement records a pending root entry for view and moves the
// transition kind to replace-root. The entries are not touched here; the
// replacement applies when the blocked flag falls (ApplyPendingRoot).
func (c *Controller) StageRootReplacement(view View) {
	entry := newEntry(view, AnimationNone)
	c.pendingRoot = &entry
	c.kind = TransitionReplaceRoot
	c.logger.Debug("root replacement staged", "view", entry.Identity())
}

// HasPendingRoot reports whether a staged root replacement is waiting.
func (c *Controller) HasPendingRoot() bool {
	return c.pendingRoot != nil
}

// ApplyPendingRoot rebuilds the stack as the single pending entry. The
// pending request is cleared either way; applying twice requires staging
// twice. Replacing the root with a view whose identity matches the current
// root keeps the stack unchanged rather than inserting a duplicate.
func (c *Controller) ApplyPendingRoot() {
	if c.pendingRoot == nil {
		return
	}
	pending := *c.pendingRoot
	c.pendingRoot = nil

	if len(c.entries) > 0 && c.entries[0].Identity() == pending.Identity() {
		c.logger.Debug("root replacement skipped, identity unchanged", "view", pending.Identity())
		return
	}

	c.entries = []StackEntry{pending}
	c.animation = pending.Animation()
	c.backGesture = selectGesture(c.entries)
	c.logger.Info("root replaced", "view", pending.Identity())
	if c.bus != nil {
		c.bus.Publish(NewRootReplacedEvent(pending.Identity()))
	}
	c.publishSnapshot()
}

// GestureReadout captures the metadata the gesture's visual driver needs:
// the top entry's insertion animation and its gesture capability, with the
// no-animation/no-gesture defaults for an empty stack.
func (c *Controller) GestureReadout() GestureSnapshot {
	if len(c.entries) == 0 {
		return GestureSnapshot{Animation: AnimationNone, Capability: GestureDisabled}
	}
	top := c.entries[len(c.entries)-1]
	capability := top.View().Config().BackGesture
	if capability == "" {
		capability = GestureDisabled
	}
	return GestureSnapshot{Animation: top.Animation(), Capability: capability}
}

// commit swaps in the next entries value, recomputing derived state first so
// observers never see a snapshot paired with stale metadata. Equal-count
// calls only arise from no-op mutations and are absorbed without publishing.
func (c *Controller) commit(next []StackEntry) {
	old := c.entries
	if len(next) == len(old) {
		return
	}

	kind := classifyTransition(c.kind, len(old), len(next))
	animation := selectAnimation(old, next)
	gesture := selectGesture(next)

	c.kind = kind
	c.animation = animation
	c.backGesture = gesture
	c.entries = next

	c.logger.Debug("stack mutated",
		"depth", len(next),
		"kind", string(kind),
		"animation", string(animation),
	)
	c.publishSnapshot()
}

func (c *Controller) publishSnapshot() {
	if c.bus == nil {
		return
	}
	c.bus.Publish(NewStackChangedEvent(c.entries, c.Derived()))
}
