package tui

import "github.com/benmax/navstack/internal/nav"

// Messages bridging the navigation bus into the Bubbletea update loop. The
// App's bus subscription converts published events into these and sends them
// through the program, so the model only ever sees navigation state on its
// own goroutine.

// stackChangedMsg carries a published snapshot plus its derived state.
type stackChangedMsg struct {
	entries []nav.StackEntry
	derived nav.DerivedState
}

// blockedChangedMsg reports an edge of the transitions-blocked flag.
type blockedChangedMsg struct {
	blocked bool
}

// rootReplacedMsg reports that a deferred root replacement applied.
type rootReplacedMsg struct {
	identity string
}

// dismissFocusMsg asks the model to blur the title input. Sent by the
// serializer's focus dismisser before each accepted mutation.
type dismissFocusMsg struct{}

// gestureCapturedMsg delivers a gesture snapshot captured by the
// captureGesture command.
type gestureCapturedMsg struct {
	snapshot nav.GestureSnapshot
}

// unblockMsg ends the demo's block window around a root replacement.
type unblockMsg struct{}
