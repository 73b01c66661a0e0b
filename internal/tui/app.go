package tui

import (
	"fmt"

	"github.com/benmax/navstack/internal/config"
	"github.com/benmax/navstack/internal/events"
	"github.com/benmax/navstack/internal/logging"
	"github.com/benmax/navstack/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// App wires the navigation core to the Bubbletea program: it owns the bus,
// the controller, the serializer, and the subscription that converts
// published events into program messages.
type App struct {
	cfg    *config.Config
	logger *logging.Logger

	bus        *events.Bus
	serializer *nav.Serializer
	gestures   *nav.GestureCoordinator
	program    *tea.Program
}

// New builds the demo application from a validated config.
func New(cfg *config.Config, logger *logging.Logger) *App {
	bus := events.NewBus()

	policy := nav.MaxDepthPolicy(cfg.Nav.MaxDepth)
	if cfg.Nav.RejectDuplicateTop {
		policy = nav.CombinePolicies(policy, nav.RejectDuplicateTop)
	}

	ctrl := nav.NewController(
		nav.WithBus(bus),
		nav.WithLogger(logger),
		nav.WithInsertPolicy(policy),
	)

	app := &App{cfg: cfg, logger: logger, bus: bus}

	app.serializer = nav.NewSerializer(ctrl,
		nav.WithSerializerBus(bus),
		nav.WithSerializerLogger(logger),
		nav.WithReplaceRootDelay(cfg.Nav.ReplaceRootDelay()),
		nav.WithFocusDismisser(nav.FocusDismisserFunc(app.dismissFocus)),
	)
	app.gestures = nav.NewGestureCoordinator(app.serializer, bus)
	return app
}

// dismissFocus forwards the serializer's focus-dismissal request into the
// update loop. A no-op before the program starts.
func (a *App) dismissFocus() {
	if a.program != nil {
		a.program.Send(dismissFocusMsg{})
	}
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	model := NewModel(a.serializer, a.gestures, a.cfg)
	a.program = tea.NewProgram(model, tea.WithAltScreen())

	defer a.bus.Close()
	defer a.serializer.Close()

	sub := a.bus.SubscribeAll(a.forward)
	defer sub.Unsubscribe()

	a.serializer.SetRoot(newDemoView("home",
		nav.AnimationNone,
		nav.GestureCapability(a.cfg.Nav.DefaultGesture)))

	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// forward converts bus events into program messages. Handlers run on the
// serializer goroutine; program.Send is safe from any goroutine.
func (a *App) forward(e events.Event) {
	if a.program == nil {
		return
	}
	switch ev := e.(type) {
	case *nav.StackChangedEvent:
		a.program.Send(stackChangedMsg{entries: ev.Entries, derived: ev.Derived})
	case *nav.BlockedChangedEvent:
		a.program.Send(blockedChangedMsg{blocked: ev.Blocked})
	case *nav.RootReplacedEvent:
		a.program.Send(rootReplacedMsg{identity: ev.Identity})
	}
}
