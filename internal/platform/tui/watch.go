package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/randwalk/internal/render"
	"github.com/vovakirdan/randwalk/internal/walk"
)

// Watch animation defaults.
const (
	defaultTickRate = 30 // animation steps per second
	minTickRate     = 2
	maxTickRate     = 240
	headerLines     = 4 // header + separator + status + help
)

// WatchKeyMap defines the key bindings for the watch screen.
type WatchKeyMap struct {
	Pause   key.Binding
	Restart key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Faster, k.Slower, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart},
		{k.Faster, k.Slower, k.Quit},
	}
}

// DefaultWatchKeyMap returns default key bindings.
func DefaultWatchKeyMap() WatchKeyMap {
	return WatchKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new walk"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WatchModel animates a single walk step by step.
type WatchModel struct {
	params walk.Params
	seed   uint64
	engine *walk.Engine
	theme  render.Theme
	keys   WatchKeyMap
	help   help.Model

	width    int
	height   int
	tickRate int
	paused   bool
	quitting bool
	err      error
}

// NewWatchModel creates a watch model for the given parameters.
// The seed selects the walk; restarting picks a fresh time-based seed.
func NewWatchModel(p walk.Params, seed uint64, width, height int) WatchModel {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	h := help.New()
	h.ShowAll = false

	m := WatchModel{
		params:   p,
		seed:     seed,
		theme:    render.DefaultTheme(),
		keys:     DefaultWatchKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		tickRate: defaultTickRate,
	}
	m.engine, m.err = walk.NewEngine(p, seed)
	return m
}

// Init starts the animation loop.
func (m WatchModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tickCmd(m.tickRate)
}

// Update handles messages and advances the animation.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			return m, tickCmd(m.tickRate)
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.seed = uint64(time.Now().UnixNano())
		m.engine, m.err = walk.NewEngine(m.params, m.seed)
		if m.err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		m.paused = false
		return m, tickCmd(m.tickRate)

	case key.Matches(msg, m.keys.Faster):
		m.tickRate *= 2
		if m.tickRate > maxTickRate {
			m.tickRate = maxTickRate
		}
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.tickRate /= 2
		if m.tickRate < minTickRate {
			m.tickRate = minTickRate
		}
		return m, nil
	}

	return m, nil
}

// handleTick advances the walk by one step per frame.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.engine == nil {
		return m, nil
	}
	if m.engine.Phase() == walk.PhaseTerminated {
		// Walk finished; keep the final frame on screen.
		return m, nil
	}

	m.engine.Step()
	return m, tickCmd(m.tickRate)
}

// View renders the current frame.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("watch: %v\n", m.err)
	}

	plotW := m.width
	plotH := m.height - headerLines
	if plotW < 8 {
		plotW = 8
	}
	if plotH < 4 {
		plotH = 4
	}

	var b strings.Builder
	b.WriteString(render.Trace(m.engine.Result(), m.params.Obstacles, m.params.Gates, plotW, plotH, m.theme))

	status := fmt.Sprintf("seed %d | %d ticks/s", m.seed, m.tickRate)
	if m.paused {
		status += " | PAUSED"
	}
	if m.engine.Phase() == walk.PhaseTerminated {
		status += " | done (r for a new walk)"
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunWatch starts the Bubble Tea program animating one walk.
func RunWatch(p walk.Params, seed uint64, width, height int) error {
	model := NewWatchModel(p, seed, width, height)
	if model.err != nil {
		return model.err
	}

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := prog.Run()
	return err
}
