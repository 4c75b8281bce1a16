package tui

import (
	"fmt"
	"strings"
)

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("parafox watch: %s (every %s)", m.config.Workload, m.config.Interval)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLatest())
	b.WriteString("\n")
	b.WriteString(m.renderDriftLog())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q: quit  j/k: scroll drift log"))

	return b.String()
}

func (m Model) renderLatest() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Latest recommendation"))
	b.WriteString("\n")

	if m.latest == nil {
		b.WriteString(labelStyle.Render("  waiting for first oracle result..."))
		b.WriteString("\n")
		return b.String()
	}

	res := m.latest.Result
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("iteration:"),
		valueStyle.Render(fmt.Sprintf("%d (%d snapshots)", m.latest.Iteration, m.snapshots))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("workers:  "),
		valueStyle.Render(fmt.Sprintf("%d", res.Workers))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("chunk:    "),
		valueStyle.Render(fmt.Sprintf("%d", res.ChunkSize))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("speedup:  "),
		valueStyle.Render(fmt.Sprintf("%.2fx estimated", res.EstimatedSpeedup))))

	for _, w := range res.Warnings {
		b.WriteString("  " + warningStyle.Render("! "+w) + "\n")
	}

	return b.String()
}

func (m Model) renderDriftLog() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Drift"))
	b.WriteString("\n")

	if len(m.driftLog) == 0 {
		b.WriteString(labelStyle.Render("  no drift detected"))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.visibleLogLines()
	end := len(m.driftLog) - m.logOffset
	start := end - visible
	if start < 0 {
		start = 0
	}
	for _, line := range m.driftLog[start:end] {
		b.WriteString("  " + driftStyle.Render(line) + "\n")
	}

	return b.String()
}

func (m Model) visibleLogLines() int {
	// Header, latest panel, section titles, help line.
	reserved := 12
	if m.height <= reserved {
		return 5
	}
	return m.height - reserved
}
