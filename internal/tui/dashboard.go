// Package tui implements the interactive dashboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/stats"
	"github.com/grow-cli/grow/internal/storage"
)

// snapshot is the derived state the dashboard renders.
type snapshot struct {
	pendingTasks []model.Task
	todayFitness []model.FitnessLog
	todayCoding  []model.CodingLog
	todayEntry   *model.JournalEntry
	streak       int
	weekly       map[string]stats.KindTotal
	moods        map[string]int
}

// loadedMsg is sent when the collections have been refreshed.
type loadedMsg struct {
	snap snapshot
	err  error
}

// DashboardModel is the bubbletea model for the dashboard. It renders the
// empty defaults immediately and fills in once the load resolves.
type DashboardModel struct {
	tasks   *storage.TaskStore
	fitness *storage.FitnessStore
	coding  *storage.CodingStore
	journal *storage.JournalStore

	snap   snapshot
	loaded bool
	err    error
	width  int
	height int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Tasks   *storage.TaskStore
	Fitness *storage.FitnessStore
	Coding  *storage.CodingStore
	Journal *storage.JournalStore
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	return &DashboardModel{
		tasks:   config.Tasks,
		fitness: config.Fitness,
		coding:  config.Coding,
		journal: config.Journal,
	}
}

// Init starts the initial load.
func (m *DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd refreshes every collection and recomputes the derived views.
func (m *DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		for _, load := range []func() error{
			m.tasks.Load, m.fitness.Load, m.coding.Load, m.journal.Load,
		} {
			if err := load(); err != nil {
				return loadedMsg{err: err}
			}
		}

		now := time.Now()
		snap := snapshot{
			pendingTasks: m.tasks.Pending(),
			todayFitness: stats.FilterDay(m.fitness.Records(), now),
			todayCoding:  stats.FilterDay(m.coding.Records(), now),
			streak:       stats.Streak(m.coding.Records(), now),
			weekly:       stats.WeeklyTotals(m.fitness.Records(), now),
			moods:        stats.MoodCounts(m.journal.Records()),
		}
		if entry, ok := m.journal.Today(now); ok {
			snap.todayEntry = &entry
		}
		return loadedMsg{snap: snap}
	}
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.loadCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loadedMsg:
		m.loaded = true
		m.snap = msg.snap
		m.err = msg.err
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Grow") + "\n")
	b.WriteString(mutedStyle.Render(time.Now().Format("Monday, January 2")) + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}
	if !m.loaded {
		b.WriteString(mutedStyle.Render("loading...") + "\n")
	}

	b.WriteString(m.viewTasks())
	b.WriteString(m.viewFitness())
	b.WriteString(m.viewCoding())
	b.WriteString(m.viewJournal())

	b.WriteString("\n" + mutedStyle.Render("r refresh · q quit"))
	return b.String()
}

func (m *DashboardModel) viewTasks() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Tasks") + "\n")
	if len(m.snap.pendingTasks) == 0 {
		b.WriteString(mutedStyle.Render("  nothing pending") + "\n")
	}
	for i, t := range m.snap.pendingTasks {
		if i == maxDashboardRows {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  … and %d more", len(m.snap.pendingTasks)-i)) + "\n")
			break
		}
		line := "  ○ " + t.Title
		if t.Overdue(time.Now()) {
			line += " " + errorStyle.Render("(overdue)")
		} else if t.DueDate != "" {
			line += " " + mutedStyle.Render("(due "+t.DueDate+")")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *DashboardModel) viewFitness() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Fitness") + "\n")
	b.WriteString(fmt.Sprintf("  today: %d log(s)\n", len(m.snap.todayFitness)))
	for _, kind := range stats.Kinds(m.snap.weekly) {
		agg := m.snap.weekly[kind]
		b.WriteString(fmt.Sprintf("  %-10s %s %s this week (%d logs)\n",
			kind, formatAmount(agg.Total), agg.Unit, agg.Count))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *DashboardModel) viewCoding() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Coding") + "\n")
	b.WriteString(fmt.Sprintf("  streak: %s\n", streakStyle.Render(fmt.Sprintf("%d day(s)", m.snap.streak))))
	b.WriteString(fmt.Sprintf("  today: %d log(s)\n\n", len(m.snap.todayCoding)))
	return b.String()
}

func (m *DashboardModel) viewJournal() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Journal") + "\n")
	if m.snap.todayEntry != nil {
		b.WriteString("  today: " + moodGlyph(m.snap.todayEntry.Mood) + " " + m.snap.todayEntry.Mood + "\n")
	} else {
		b.WriteString(mutedStyle.Render("  no entry yet today") + "\n")
	}
	if len(m.snap.moods) > 0 {
		var parts []string
		for _, mood := range model.Moods {
			if n := m.snap.moods[mood]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", moodGlyph(mood), n))
			}
		}
		b.WriteString("  recent: " + strings.Join(parts, "  ") + "\n")
	}
	return b.String()
}

// maxDashboardRows caps per-section lists.
const maxDashboardRows = 5

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func moodGlyph(mood string) string {
	switch mood {
	case model.MoodHappy:
		return "☺"
	case model.MoodSad:
		return "☹"
	default:
		return "–"
	}
}

// Styles.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	streakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
)

// Run starts the dashboard program.
func Run(config DashboardConfig) error {
	p := tea.NewProgram(NewDashboardModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
