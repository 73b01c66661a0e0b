package tui

import "github.com/benmax/navstack/internal/nav"

// demoView is the concrete view type the demo pushes onto the stack. Its
// title doubles as its navigation identity.
type demoView struct {
	title  string
	config nav.ViewConfig
}

// Identity implements nav.View.
func (v demoView) Identity() string { return v.title }

// Config implements nav.View.
func (v demoView) Config() nav.ViewConfig { return v.config }

func newDemoView(title string, animation nav.Animation, gesture nav.GestureCapability) demoView {
	return demoView{
		title:  title,
		config: nav.ViewConfig{Animation: animation, BackGesture: gesture},
	}
}
