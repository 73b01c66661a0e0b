package nav

// StackEntry wraps one live view plus the animation chosen at its insertion.
// Entries are created when a view is pushed (or a root is set) and are
// immutable afterwards; they are dropped when popped off the stack.
type StackEntry struct {
	view      View
	animation Animation
	identity  string
}

func newEntry(view View, animation Animation) StackEntry {
	if animation == "" {
		animation = AnimationNone
	}
	return StackEntry{
		view:      view,
		animation: animation,
		identity:  view.Identity(),
	}
}

// View returns the wrapped view.
func (e StackEntry) View() View {
	return e.view
}

// Animation returns the animation chosen when the entry was inserted.
func (e StackEntry) Animation() Animation {
	return e.animation
}

// Identity returns the stable identifier captured from the view at
// insertion time.
func (e StackEntry) Identity() string {
	return e.identity
}
