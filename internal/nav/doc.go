// Package nav implements the navigation-stack controller: the ordered list
// of live views, the transition metadata derived from stack mutations, and
// the serialized mutation protocol that keeps programmatic edits and an
// interactive back gesture from racing.
//
// The package is split along three responsibilities:
//
//   - Controller owns the entries and recomputes derived state (transition
//     kind, active animation, back-gesture capability) before every snapshot
//     is published.
//   - Serializer funnels every mutation request onto one goroutine in
//     submission order, and drops requests outright while transitions are
//     blocked.
//   - GestureCoordinator captures stable transition metadata at the moment a
//     back gesture begins.
//
// Rendering, the view hierarchy, and keyboard dismissal are collaborators:
// the core only reads a view's identity and its two-attribute configuration,
// and asks an injected FocusDismisser to clear text-input focus before a
// mutation runs. Observers receive snapshots through an events.EventBus; the
// snapshot and its derived state are always published together, on the
// serializer goroutine.
package nav
