package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock timestamp of one frame. The engine's
// stepper turns consecutive timestamps into clamped simulation deltas, so the
// message delivers the raw time rather than a precomputed dt.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
