package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/benmax/navstack/internal/config"
	"github.com/benmax/navstack/internal/events"
	"github.com/benmax/navstack/internal/nav"
	"github.com/benmax/navstack/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func testConfig() *config.Config {
	return &config.Config{
		Nav: config.NavConfig{
			ReplaceRootDelayMs: 1,
			DefaultAnimation:   string(nav.AnimationSlide),
			DefaultGesture:     string(nav.GestureEdgeSwipe),
		},
		TUI: config.TUIConfig{
			ShowStatusBar:     true,
			MaxVisibleEntries: 0,
		},
	}
}

// newTestModel builds a model against a live serializer so key handlers
// have something real to submit to.
func newTestModel(t *testing.T) (Model, *nav.Serializer) {
	t.Helper()
	bus := events.NewBus()
	ctrl := nav.NewController(nav.WithBus(bus))
	// Stage root replacements immediately so the tests stay deterministic.
	s := nav.NewSerializer(ctrl,
		nav.WithSerializerBus(bus),
		nav.WithReplaceRootDelay(0))
	t.Cleanup(func() {
		s.Close()
		bus.Close()
	})
	return NewModel(s, nav.NewGestureCoordinator(s, bus), testConfig()), s
}

// stackState drives real mutations and returns the resulting snapshot, the
// only way to obtain entries outside the nav package.
func stackState(s *nav.Serializer, titles ...string) ([]nav.StackEntry, nav.DerivedState) {
	for i, title := range titles {
		view := testutil.NewView(title, nav.AnimationSlide, nav.GestureEdgeSwipe)
		if i == 0 {
			s.SetRoot(view)
		} else {
			s.Submit(nav.InsertOp(view, nav.AnimationSlide))
		}
	}
	return s.Snapshot()
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestModelStackChanged(t *testing.T) {
	m, s := newTestModel(t)
	entries, derived := stackState(s, "home", "settings", "about")

	updated, _ := m.Update(stackChangedMsg{entries: entries, derived: derived})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"home", "settings", "about", "depth 3", "kind push"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModelEmptyStack(t *testing.T) {
	m, _ := newTestModel(t)
	if view := m.View(); !strings.Contains(view, "waiting for root") {
		t.Errorf("empty stack placeholder missing:\n%s", view)
	}
}

func TestModelEntryElision(t *testing.T) {
	m, s := newTestModel(t)
	m.cfg.TUI.MaxVisibleEntries = 2
	entries, derived := stackState(s, "a", "b", "c", "d")

	updated, _ := m.Update(stackChangedMsg{entries: entries, derived: derived})
	view := updated.(Model).View()

	if !strings.Contains(view, "2 more below") {
		t.Errorf("elision marker missing:\n%s", view)
	}
	if strings.Contains(view, "0 · a") {
		t.Errorf("elided entry still rendered:\n%s", view)
	}
}

func TestModelPushFlow(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home")

	updated, _ := m.Update(keyMsg("n"))
	m = updated.(Model)
	if !m.adding {
		t.Fatal("n should enter adding mode")
	}

	for _, r := range "detail" {
		updated, _ = m.Update(keyMsg(string(r)))
		m = updated.(Model)
	}
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)

	if m.adding {
		t.Error("enter should leave adding mode")
	}
	s.Barrier()
	entries, derived := s.Snapshot()
	if len(entries) != 2 || entries[1].Identity() != "detail" {
		t.Errorf("expected [home detail], got %d entries", len(entries))
	}
	if derived.Kind != nav.TransitionPush {
		t.Errorf("Kind = %q, want push", derived.Kind)
	}
}

func TestModelPushEmptyTitle(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home")

	updated, _ := m.Update(keyMsg("n"))
	updated, _ = updated.(Model).Update(keyMsg("enter"))
	m = updated.(Model)

	if m.adding {
		t.Error("enter should leave adding mode even with an empty title")
	}
	s.Barrier()
	if entries, _ := s.Snapshot(); len(entries) != 1 {
		t.Errorf("empty title must not push, got %d entries", len(entries))
	}
}

func TestModelEscCancelsAdding(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home")

	updated, _ := m.Update(keyMsg("n"))
	updated, _ = updated.(Model).Update(keyMsg("esc"))
	m = updated.(Model)

	if m.adding {
		t.Error("esc should cancel adding mode")
	}
	s.Barrier()
	if entries, _ := s.Snapshot(); len(entries) != 1 {
		t.Errorf("cancelled add must not push, got %d entries", len(entries))
	}
}

func TestModelPop(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home", "settings")

	updated, _ := m.Update(keyMsg("backspace"))
	_ = updated

	s.Barrier()
	entries, derived := s.Snapshot()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after pop, got %d", len(entries))
	}
	if derived.Kind != nav.TransitionPop {
		t.Errorf("Kind = %q, want pop", derived.Kind)
	}
}

func TestModelUpToRoot(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home", "a", "b", "c")

	m.Update(keyMsg("u"))

	s.Barrier()
	if entries, _ := s.Snapshot(); len(entries) != 1 {
		t.Errorf("expected root only, got %d entries", len(entries))
	}
}

func TestModelBlockedToggle(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home")

	m.Update(keyMsg("b"))
	s.Barrier()
	if !s.Blocked() {
		t.Fatal("b should block the serializer")
	}

	updated, _ := m.Update(blockedChangedMsg{blocked: true})
	m = updated.(Model)
	if !strings.Contains(m.View(), "BLOCKED") {
		t.Error("blocked badge missing from status bar")
	}

	m.Update(keyMsg("b"))
	s.Barrier()
	if s.Blocked() {
		t.Error("second b should unblock")
	}
}

func TestModelGestureCapture(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home", "settings")

	updated, cmd := m.Update(keyMsg("g"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("g should return a capture command")
	}
	raw := cmd()
	msg, ok := raw.(gestureCapturedMsg)
	if !ok {
		t.Fatalf("capture command returned %T, want gestureCapturedMsg", raw)
	}

	updated, _ = m.Update(msg)
	m = updated.(Model)
	if m.gesture == nil {
		t.Fatal("capture message should record a gesture snapshot")
	}
	if m.gesture.Capability != nav.GestureEdgeSwipe {
		t.Errorf("Capability = %q, want edge_swipe", m.gesture.Capability)
	}
	if !strings.Contains(m.View(), "captured") {
		t.Error("captured readout missing from status bar")
	}
}

// gateView blocks inside Identity until released, pinning the serializer
// goroutine mid-mutation.
type gateView struct {
	id      string
	release chan struct{}
}

func (v gateView) Identity() string {
	<-v.release
	return v.id
}

func (v gateView) Config() nav.ViewConfig { return nav.ViewConfig{} }

func TestModelGestureKeyWithBusySerializer(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home")

	release := make(chan struct{})
	s.Submit(nav.InsertOp(gateView{id: "slow", release: release}, nav.AnimationSlide))

	// With the serializer pinned, the g handler must still return
	// immediately; waiting here is how the update loop and the
	// serializer's publishes can end up waiting on each other.
	done := make(chan tea.Cmd, 1)
	go func() {
		_, cmd := m.Update(keyMsg("g"))
		done <- cmd
	}()

	var cmd tea.Cmd
	select {
	case cmd = <-done:
	case <-time.After(time.Second):
		t.Fatal("Update(g) blocked while the serializer was mid-mutation")
	}
	if cmd == nil {
		t.Fatal("g should return a capture command")
	}

	close(release)
	raw := cmd()
	msg, ok := raw.(gestureCapturedMsg)
	if !ok {
		t.Fatalf("capture command returned %T, want gestureCapturedMsg", raw)
	}
	if msg.snapshot.Animation != nav.AnimationSlide {
		t.Errorf("Animation = %q, want slide (capture ordered after the insert)", msg.snapshot.Animation)
	}
	if msg.snapshot.Capability != nav.GestureDisabled {
		t.Errorf("Capability = %q, want disabled", msg.snapshot.Capability)
	}

	updated, _ := m.Update(msg)
	if updated.(Model).gesture == nil {
		t.Error("capture message should record the snapshot")
	}
}

func TestModelDismissFocus(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(keyMsg("n"))
	updated, _ = updated.(Model).Update(dismissFocusMsg{})
	m = updated.(Model)

	if m.adding {
		t.Error("dismissFocusMsg should leave adding mode")
	}
	if m.titleInput.Focused() {
		t.Error("dismissFocusMsg should blur the title input")
	}
}

func TestModelReplaceRootCycle(t *testing.T) {
	m, s := newTestModel(t)
	stackState(s, "home")

	updated, cmd := m.Update(keyMsg("r"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("r should schedule an unblock tick")
	}
	s.Barrier()
	if !s.Blocked() {
		t.Fatal("r should block while the replacement settles")
	}

	// Run the scheduled unblock directly instead of waiting for the tick.
	updated, _ = m.Update(unblockMsg{})
	m = updated.(Model)

	s.Barrier()
	entries, derived := s.Snapshot()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after replacement, got %d", len(entries))
	}
	if entries[0].Identity() != "root-1" {
		t.Errorf("root = %q, want root-1", entries[0].Identity())
	}
	if derived.Kind != nav.TransitionReplaceRoot {
		t.Errorf("Kind = %q, want replace_root", derived.Kind)
	}

	updated2, _ := m.Update(rootReplacedMsg{identity: "root-1"})
	if view := updated2.(Model).View(); !strings.Contains(view, "root replaced") {
		t.Errorf("replacement notice missing:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q returned %T, want tea.QuitMsg", cmd())
	}
}

func TestModelMutationsPublishAndDismissFocus(t *testing.T) {
	bus := events.NewBus()
	ctrl := nav.NewController(nav.WithBus(bus))
	recorder := &testutil.FocusRecorder{}
	s := nav.NewSerializer(ctrl,
		nav.WithSerializerBus(bus),
		nav.WithFocusDismisser(recorder),
		nav.WithReplaceRootDelay(0))
	t.Cleanup(func() {
		s.Close()
		bus.Close()
	})
	collector := testutil.Collect(bus)
	m := NewModel(s, nav.NewGestureCoordinator(s, bus), testConfig())
	stackState(s, "home")

	updated, _ := m.Update(keyMsg("n"))
	m = updated.(Model)
	for _, r := range "detail" {
		updated, _ = m.Update(keyMsg(string(r)))
		m = updated.(Model)
	}
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)
	m.Update(keyMsg("backspace"))
	s.Barrier()

	if recorder.Calls() != 2 {
		t.Errorf("focus dismissals = %d, want 2 (one per accepted mutation)", recorder.Calls())
	}
	last := collector.Last()
	if last == nil {
		t.Fatal("no snapshot published")
	}
	if len(last.Entries) != 1 || last.Derived.Kind != nav.TransitionPop {
		t.Errorf("last snapshot = %d entries, kind %q; want 1 entry, pop",
			len(last.Entries), last.Derived.Kind)
	}
}

func TestModelWindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.width, m.height)
	}
}
