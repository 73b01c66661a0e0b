package nav

import "slices"

// Animation identifies the visual transition declared for a view. The core
// only selects an animation; executing it belongs to the rendering layer.
type Animation string

const (
	// AnimationNone disables the transition animation.
	AnimationNone Animation = "none"
	// AnimationFade cross-fades the incoming and outgoing views.
	AnimationFade Animation = "fade"
	// AnimationSlide slides the incoming view in from the trailing edge.
	AnimationSlide Animation = "slide"
	// AnimationScale zooms the incoming view up from the center.
	AnimationScale Animation = "scale"
)

// GestureCapability declares whether and how a view permits an interactive
// swipe-to-pop gesture while it is on top of the stack.
type GestureCapability string

const (
	// GestureDisabled opts the view out of the back gesture.
	GestureDisabled GestureCapability = "disabled"
	// GestureEdgeSwipe permits the gesture from the leading screen edge only.
	GestureEdgeSwipe GestureCapability = "edge_swipe"
	// GestureFullSurface permits the gesture anywhere on the view.
	GestureFullSurface GestureCapability = "full_surface"
)

// ValidAnimations returns the list of recognized animation names.
func ValidAnimations() []string {
	return []string{
		string(AnimationNone),
		string(AnimationFade),
		string(AnimationSlide),
		string(AnimationScale),
	}
}

// ValidGestures returns the list of recognized gesture capability names.
func ValidGestures() []string {
	return []string{
		string(GestureDisabled),
		string(GestureEdgeSwipe),
		string(GestureFullSurface),
	}
}

// IsValidAnimation reports whether name is a recognized animation.
func IsValidAnimation(name string) bool {
	return slices.Contains(ValidAnimations(), name)
}

// IsValidGesture reports whether name is a recognized gesture capability.
func IsValidGesture(name string) bool {
	return slices.Contains(ValidGestures(), name)
}

// ViewConfig is the two-attribute configuration the navigation core reads
// from a view: the animation declared for its transitions and its
// back-gesture opt-in. Zero values mean "no animation" and "no gesture".
type ViewConfig struct {
	Animation   Animation
	BackGesture GestureCapability
}

// View is the capability set the navigation core depends on. Concrete view
// types live in the rendering layer; the core never inspects them beyond
// this interface.
type View interface {
	// Identity returns a stable identifier used for equality and targeted
	// removal. Two views with the same identity are the same destination.
	Identity() string

	// Config returns the view's navigation configuration.
	Config() ViewConfig
}
