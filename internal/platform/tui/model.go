package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glidekit/flaptui/internal/engine"
	"github.com/glidekit/flaptui/internal/storage"
)

// Model is the Bubble Tea model running one game session loop.
type Model struct {
	eng        *engine.Engine
	canvas     *Canvas
	store      *storage.Store // may be nil, scoreboard disabled then
	fps        int
	scoreboard *ScoreboardModel // non-nil while the scores screen is open
	quitting   bool
}

// NewModel creates the game model. The store may be nil; it only backs the
// scoreboard screen here, score persistence is wired into the engine itself.
func NewModel(eng *engine.Engine, store *storage.Store, fps int) Model {
	field := eng.Playfield()
	return Model{
		eng:    eng,
		canvas: NewCanvas(int(field.W/cellPxW), int(field.H/cellPxH)),
		store:  store,
		fps:    fps,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles input, resize and frame messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		m.eng.SetPlayfield(PlayfieldFor(msg.Width, msg.Height))
		if m.scoreboard != nil {
			m.scoreboard.resize(msg.Width, msg.Height)
		}
		return m, nil

	case TickMsg:
		if m.scoreboard == nil {
			m.eng.Advance(time.Time(msg))
		}
		return m, tickCmd(m.fps)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		sb, closed, quit := m.scoreboard.handleKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		if closed {
			m.scoreboard = nil
		} else {
			m.scoreboard = &sb
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ", "up", "w":
		m.eng.Flap()
	case "enter":
		m.eng.Start()
	case "p", "esc":
		m.eng.TogglePause()
	case "r":
		m.eng.Retry()
	case "tab":
		if m.store != nil {
			sb := newScoreboard(m.store, m.canvas.Width(), m.canvas.Height())
			m.scoreboard = &sb
		}
	case "ctrl+s":
		m.saveScreenshot()
	}
	return m, nil
}

// saveScreenshot dumps the current frame as plain text.
func (m *Model) saveScreenshot() {
	drawSnapshot(m.canvas, m.eng.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".flaptui", "screenshots")
	//nolint:errcheck // best-effort
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("flap_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // best-effort, gameplay continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.canvas.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	drawSnapshot(m.canvas, m.eng.Snapshot())
	return m.canvas.Render()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(eng *engine.Engine, store *storage.Store, fps int) error {
	p := tea.NewProgram(
		NewModel(eng, store, fps),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
