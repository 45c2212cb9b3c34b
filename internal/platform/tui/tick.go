// Package tui provides the Bubble Tea views of the treasure map simulator:
// the scenario menu, animated playback, run history, the path prompt and
// the SSH server that serves them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance playback by one turn. Gen identifies the
// playback that scheduled it so a stale tick chain dies out once its viewer
// is replaced.
type TickMsg struct {
	Time time.Time
	Gen  int64
}

var tickGen atomic.Int64

// nextTickGen returns a fresh generation for a new playback.
func nextTickGen() int64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the given turns per second.
func tickCmd(turnRate int, gen int64) tea.Cmd {
	if turnRate <= 0 {
		turnRate = 1
	}
	interval := time.Second / time.Duration(turnRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
