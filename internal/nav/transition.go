package nav

// TransitionKind classifies a stack mutation so the rendering layer can
// select the matching visual behavior.
type TransitionKind string

const (
	// TransitionPush means the stack grew (or the defensive default applied).
	TransitionPush TransitionKind = "push"
	// TransitionPop means the stack shrank.
	TransitionPop TransitionKind = "pop"
	// TransitionReplaceRoot means a deferred root replacement is staged or
	// was just applied. Entered only via RequestReplaceRoot; exited by the
	// next ordinary mutation.
	TransitionReplaceRoot TransitionKind = "replace_root"
)

// DerivedState is the transition metadata recomputed alongside every entries
// change. It is published atomically with the snapshot it describes.
type DerivedState struct {
	Kind        TransitionKind
	Animation   Animation
	BackGesture GestureCapability
}

// classifyTransition applies the count-comparison rule. Growth is a push.
// Shrinkage is a pop, unless the previous kind was neither push nor pop
// (replace-root): that branch falls back to push.
func classifyTransition(prev TransitionKind, oldCount, newCount int) TransitionKind {
	switch {
	case newCount == oldCount:
		return prev
	case newCount > oldCount:
		return TransitionPush
	case prev != TransitionPush && prev != TransitionPop:
		return TransitionPush
	default:
		return TransitionPop
	}
}

// selectAnimation picks the animation accompanying a transition: the
// incoming top entry's on growth, the removed entry's on shrinkage. The
// removed entry is the one at index len(next) of the pre-mutation list.
func selectAnimation(old, next []StackEntry) Animation {
	switch {
	case len(next) > len(old):
		return next[len(next)-1].Animation()
	case len(next) < len(old):
		return old[len(next)].Animation()
	default:
		return AnimationNone
	}
}

// selectGesture reads the back-gesture capability declared by the new top
// entry, or GestureDisabled for an empty stack or an empty declaration.
func selectGesture(next []StackEntry) GestureCapability {
	if len(next) == 0 {
		return GestureDisabled
	}
	gesture := next[len(next)-1].View().Config().BackGesture
	if gesture == "" {
		return GestureDisabled
	}
	return gesture
}
