package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/benmax/navstack/internal/config"
	"github.com/benmax/navstack/internal/nav"
	"github.com/benmax/navstack/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the Bubbletea model for the navigation demo. It is a pure
// observer of the navigation core: every stack change arrives as a
// stackChangedMsg, and every user action is forwarded to the serializer.
type Model struct {
	serializer *nav.Serializer
	gestures   *nav.GestureCoordinator
	cfg        *config.Config

	entries []nav.StackEntry
	derived nav.DerivedState
	blocked bool

	gesture    *nav.GestureSnapshot
	lastInfo   string
	titleInput textinput.Model
	adding     bool
	pushCount  int

	width    int
	height   int
	quitting bool
}

// NewModel creates the demo model.
func NewModel(serializer *nav.Serializer, gestures *nav.GestureCoordinator, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "view title"
	ti.CharLimit = 40
	ti.Width = 30

	return Model{
		serializer: serializer,
		gestures:   gestures,
		cfg:        cfg,
		titleInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stackChangedMsg:
		m.entries = msg.entries
		m.derived = msg.derived
		return m, nil

	case blockedChangedMsg:
		m.blocked = msg.blocked
		return m, nil

	case rootReplacedMsg:
		m.lastInfo = fmt.Sprintf("root replaced with %q", msg.identity)
		return m, nil

	case dismissFocusMsg:
		m.titleInput.Blur()
		m.adding = false
		return m, nil

	case gestureCapturedMsg:
		m.gesture = &msg.snapshot
		return m, nil

	case unblockMsg:
		m.serializer.SetBlocked(false)
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "n":
		m.adding = true
		m.titleInput.SetValue("")
		m.titleInput.Focus()
		return m, textinput.Blink

	case "backspace", "esc":
		m.serializer.Submit(nav.RemoveLastOp())
		return m, nil

	case "u":
		m.serializer.Submit(nav.RemoveAllExceptRootOp())
		return m, nil

	case "b":
		m.serializer.SetBlocked(!m.blocked)
		return m, nil

	case "g":
		return m, m.captureGesture

	case "r":
		return m.replaceRoot()
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		m.adding = false
		m.titleInput.Blur()
		if title == "" {
			return m, nil
		}
		m.pushCount++
		view := newDemoView(title,
			nav.Animation(m.cfg.Nav.DefaultAnimation),
			nav.GestureCapability(m.cfg.Nav.DefaultGesture))
		m.serializer.Submit(nav.InsertOp(view, nav.Animation(m.cfg.Nav.DefaultAnimation)))
		return m, nil

	case "esc":
		m.adding = false
		m.titleInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// captureGesture runs as a command, never inline in Update: the capture
// waits on the serializer goroutine, and the serializer can itself be
// blocked sending a publish into this program until Update returns.
func (m Model) captureGesture() tea.Msg {
	return gestureCapturedMsg{snapshot: m.gestures.OnGestureStart()}
}

// replaceRoot drives the full deferred-replacement cycle: block, request,
// then unblock once the settle window has passed so the pending root
// applies on the falling edge.
func (m Model) replaceRoot() (tea.Model, tea.Cmd) {
	m.pushCount++
	view := newDemoView(fmt.Sprintf("root-%d", m.pushCount), nav.AnimationNone, nav.GestureDisabled)
	m.serializer.SetBlocked(true)
	m.serializer.RequestReplaceRoot(view)

	settle := m.cfg.Nav.ReplaceRootDelay() + 20*time.Millisecond
	return m, tea.Tick(settle, func(time.Time) tea.Msg {
		return unblockMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("navstack demo"))
	b.WriteString("\n")
	b.WriteString(m.renderStack())
	b.WriteString("\n")

	if m.adding {
		b.WriteString("push: " + m.titleInput.View())
		b.WriteString("\n")
	}

	if m.cfg.TUI.ShowStatusBar {
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render(
		"n push · backspace pop · u up to root · r replace root · b block · g gesture · q quit"))
	return b.String()
}

func (m Model) renderStack() string {
	if len(m.entries) == 0 {
		return styles.Muted.Render("(empty stack — waiting for root)")
	}

	visible := m.entries
	elided := 0
	if max := m.cfg.TUI.MaxVisibleEntries; max > 0 && len(visible) > max {
		elided = len(visible) - max
		visible = visible[elided:]
	}

	lines := make([]string, 0, len(visible)+1)
	if elided > 0 {
		lines = append(lines, styles.Muted.Render(fmt.Sprintf("… %d more below", elided)))
	}
	for i, entry := range visible {
		label := fmt.Sprintf("%d · %s", elided+i, entry.Identity())
		if elided+i == len(m.entries)-1 {
			lines = append(lines, styles.TopEntryBox.Render(label))
		} else {
			lines = append(lines, styles.EntryBox.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderStatus() string {
	parts := []string{
		fmt.Sprintf("depth %d", len(m.entries)),
		"kind " + string(m.derived.Kind),
		"anim " + string(m.derived.Animation),
		"gesture " + string(m.derived.BackGesture),
	}
	if m.gesture != nil {
		parts = append(parts, fmt.Sprintf("captured %s/%s", m.gesture.Animation, m.gesture.Capability))
	}
	if m.lastInfo != "" {
		parts = append(parts, m.lastInfo)
	}

	status := styles.StatusBar.Render(strings.Join(parts, " │ "))
	if m.blocked {
		status = lipgloss.JoinHorizontal(lipgloss.Top,
			styles.StatusBlocked.Render("BLOCKED"), " ", status)
	}
	return status
}
