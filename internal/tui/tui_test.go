package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/storage"
)

func setupStores(t *testing.T) DashboardConfig {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return DashboardConfig{
		Tasks:   storage.NewTaskStore(db),
		Fitness: storage.NewFitnessStore(db),
		Coding:  storage.NewCodingStore(db),
		Journal: storage.NewJournalStore(db),
	}
}

func TestDashboardRendersBeforeLoad(t *testing.T) {
	m := NewDashboardModel(setupStores(t))

	// The defaults render immediately; the loaded data arrives later.
	view := m.View()
	assert.Contains(t, view, "Grow")
	assert.Contains(t, view, "loading...")
}

func TestDashboardLoad(t *testing.T) {
	config := setupStores(t)
	require.NoError(t, config.Tasks.Add(model.NewTask("water plants", "", "")))
	require.NoError(t, config.Coding.Add(model.NewCodingLog("generics", nil)))

	m := NewDashboardModel(config)
	msg := m.loadCmd()()
	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	updated, _ := m.Update(loaded)
	view := updated.View()
	assert.Contains(t, view, "water plants")
	assert.Contains(t, view, "streak: 1 day(s)")
	assert.NotContains(t, view, "loading...")
}

func TestDashboardTodayEntry(t *testing.T) {
	config := setupStores(t)
	_, err := config.Journal.SaveToday(
		model.NewJournalEntry("fine day", nil, model.MoodHappy), time.Now())
	require.NoError(t, err)

	m := NewDashboardModel(config)
	updated, _ := m.Update(m.loadCmd()())
	assert.Contains(t, updated.View(), "happy")
}

func TestDashboardQuit(t *testing.T) {
	m := NewDashboardModel(setupStores(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboardRefresh(t *testing.T) {
	m := NewDashboardModel(setupStores(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)
	assert.NoError(t, loaded.err)
}
