package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type eventMsg Event

type closedMsg struct{}

// listen waits for the next monitor event.
func listen(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return listen(m.config.Events)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventMsg:
		snap := msg.Snap
		m.latest = &snap
		m.snapshots++
		ts := snap.Timestamp.Format("15:04:05")
		for _, c := range msg.Changes {
			m.driftLog = append(m.driftLog, fmt.Sprintf("[%s] %s", ts, c))
		}
		if len(m.driftLog) > maxLogLines {
			m.driftLog = m.driftLog[len(m.driftLog)-maxLogLines:]
		}
		return m, listen(m.config.Events)

	case closedMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.logOffset < len(m.driftLog)-1 {
			m.logOffset++
		}
		return m, nil

	case "down", "j":
		if m.logOffset > 0 {
			m.logOffset--
		}
		return m, nil
	}

	return m, nil
}
