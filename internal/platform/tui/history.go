package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/randwalk/internal/storage"
)

// History layout constants
const (
	maxBatches = 100 // Max batches to load
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the batch history browser.
// It shows recent batches and drills into the per-run records of a
// selected batch.
type HistoryModel struct {
	store    *storage.Store
	batches  []storage.BatchRecord
	runs     []storage.RunRecord
	selected *storage.BatchRecord // non-nil when viewing runs
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
	loadErr  error
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.loadBatches()
	m.table = m.createBatchTable()
	return m
}

// loadBatches loads the recent batch summaries.
func (m *HistoryModel) loadBatches() {
	if m.store == nil {
		m.batches = nil
		return
	}
	batches, err := m.store.RecentBatches(maxBatches)
	if err != nil {
		m.loadErr = err
		m.batches = nil
		return
	}
	m.batches = batches
}

// createBatchTable creates the batch overview table.
func (m *HistoryModel) createBatchTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Walker", Width: 7},
		{Title: "Runs", Width: 6},
		{Title: "Steps", Width: 7},
		{Title: "Mean dist", Width: 10},
		{Title: "Exited", Width: 7},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(m.batches))
	for i, b := range m.batches {
		rows[i] = table.Row{
			fmt.Sprintf("%d", b.ID),
			fmt.Sprintf("%d", b.WalkerType),
			fmt.Sprintf("%d", b.NumSimulations),
			fmt.Sprintf("%d", b.NumSteps),
			fmt.Sprintf("%.2f", b.MeanFinalDist),
			fmt.Sprintf("%d", b.ExitedRuns),
			b.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	return m.styledTable(columns, rows)
}

// createRunTable creates the per-run table for the selected batch.
func (m *HistoryModel) createRunTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 6},
		{Title: "Final", Width: 14},
		{Title: "Dist", Width: 9},
		{Title: "Exit", Width: 7},
		{Title: "Cross", Width: 6},
		{Title: "Restart", Width: 8},
		{Title: "Reject", Width: 7},
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		exit := "-"
		if r.ExitStep >= 0 {
			exit = fmt.Sprintf("%d", r.ExitStep)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.RunIndex),
			fmt.Sprintf("(%d, %d)", r.FinalX, r.FinalY),
			fmt.Sprintf("%.2f", r.FinalDist),
			exit,
			fmt.Sprintf("%d", r.Crossings),
			fmt.Sprintf("%d", r.Restarts),
			fmt.Sprintf("%d", r.Rejected),
		}
	}

	return m.styledTable(columns, rows)
}

// styledTable builds a focused table with the shared styling.
func (m *HistoryModel) styledTable(columns []table.Column, rows []table.Row) table.Model {
	height := m.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.selected != nil {
				// Back from runs view to the batch list.
				m.selected = nil
				m.runs = nil
				m.table = m.createBatchTable()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if m.selected == nil && m.store != nil && len(m.batches) > 0 {
				cursor := m.table.Cursor()
				if cursor >= 0 && cursor < len(m.batches) {
					batch := m.batches[cursor]
					runs, err := m.store.BatchRuns(batch.ID)
					if err != nil {
						m.loadErr = err
						return m, nil
					}
					m.selected = &batch
					m.runs = runs
					m.table = m.createRunTable()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.selected != nil {
			m.table = m.createRunTable()
		} else {
			m.table = m.createBatchTable()
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BATCH HISTORY"
	if m.selected != nil {
		title = fmt.Sprintf("BATCH %d - %d RUNS", m.selected.ID, m.selected.NumSimulations)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(fmt.Sprintf("history unavailable: %v", m.loadErr)))
	case m.selected == nil && len(m.batches) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No batches recorded yet.\nRun a batch with --save to record one."))
	default:
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory runs the history browser screen.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
