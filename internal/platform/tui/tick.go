// Package tui is the terminal front end of skyraid: a Bubble Tea model that
// feeds key and mouse input to the engine and draws its snapshots, served
// locally or per SSH session through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a redraw of the latest snapshot.
type FrameMsg time.Time

// releaseMsg ends a flap hold unless a newer key press refreshed it.
type releaseMsg struct {
	gen int
}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 30
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// releaseCmd schedules the end of a flap hold.
func releaseCmd(window time.Duration, gen int) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return releaseMsg{gen: gen}
	})
}
