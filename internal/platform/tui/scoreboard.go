package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glidekit/flaptui/internal/storage"
)

const maxScoreRows = 100

// scoreboardKeyMap defines the key bindings for the scores screen.
type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

func defaultScoreboardKeyMap() scoreboardKeyMap {
	return scoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc/tab", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoreboardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreboardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ScoreboardModel is the scores screen shown over the game.
type ScoreboardModel struct {
	table  table.Model
	help   help.Model
	keys   scoreboardKeyMap
	stats  *storage.Stats
	err    error
	width  int
	height int
}

// newScoreboard loads the score history and builds the screen.
func newScoreboard(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		help:   help.New(),
		keys:   defaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	entries, err := store.TopScores(maxScoreRows)
	if err != nil {
		m.err = err
		return m
	}
	if stats, statsErr := store.GetStats(); statsErr == nil {
		m.stats = stats
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 18},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
	m.table = t
	return m
}

func tableHeight(screenH int) int {
	h := screenH - 7 // title, stats, help and padding
	if h < 3 {
		h = 3
	}
	return h
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(tableHeight(height))
}

// handleKey processes one key press. closed reports that the screen should be
// dismissed, quit that the whole program should exit.
func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (out ScoreboardModel, closed, quit bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, false, true
	case key.Matches(msg, m.keys.Back):
		return m, true, false
	}
	m.table, _ = m.table.Update(msg)
	return m, false, false
}

// View renders the scores screen.
func (m ScoreboardModel) View() string {
	title := scoreboardTitleStyle.Render("High Scores")

	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			scoreboardErrStyle.Render(fmt.Sprintf("could not load scores: %v", m.err)),
			m.help.View(m.keys),
		)
	}

	var stats string
	if m.stats != nil && m.stats.Runs > 0 {
		stats = scoreboardStatsStyle.Render(fmt.Sprintf(
			"runs %d  |  best %d  |  avg %.1f",
			m.stats.Runs, m.stats.Best, m.stats.AvgScore,
		))
	} else {
		stats = scoreboardStatsStyle.Render("no runs recorded yet")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		stats,
		m.help.View(m.keys),
	)
}
