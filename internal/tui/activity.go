package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const activityLimit = 100

// activityEntry is one recorded session transition
type activityEntry struct {
	at     time.Time
	kind   string
	detail string
}

func (e activityEntry) String() string {
	s := e.at.Format("15:04:05.000") + " [" + e.kind + "]"
	if e.detail != "" {
		s += " " + e.detail
	}
	return s
}

// ActivityPanel shows recent session transitions when debug mode is on.
// A disabled panel records nothing and renders empty.
type ActivityPanel struct {
	enabled bool
	entries []activityEntry
	now     func() time.Time
}

// NewActivityPanel creates an empty panel
func NewActivityPanel(enabled bool) ActivityPanel {
	return ActivityPanel{enabled: enabled, now: time.Now}
}

// Enabled reports whether the panel is shown
func (p *ActivityPanel) Enabled() bool {
	return p.enabled
}

// Record appends a transition, keeping the most recent activityLimit entries
func (p *ActivityPanel) Record(kind, detail string) {
	if !p.enabled {
		return
	}
	p.entries = append(p.entries, activityEntry{at: p.now(), kind: kind, detail: detail})
	if over := len(p.entries) - activityLimit; over > 0 {
		p.entries = p.entries[over:]
	}
}

// Lines returns the recorded entries, oldest first
func (p *ActivityPanel) Lines() []string {
	lines := make([]string, len(p.entries))
	for i, e := range p.entries {
		lines[i] = e.String()
	}
	return lines
}

// Render draws the newest entries that fit in a width x height box
func (p *ActivityPanel) Render(width, height int) string {
	if !p.enabled {
		return ""
	}

	rows := max(height-4, 1)      // title and border
	textWidth := max(width-4, 10) // border and padding
	visible := p.entries[max(len(p.entries)-rows, 0):]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(ColorYellow).Bold(true).Render("ACTIVITY"))
	for _, e := range visible {
		b.WriteString("\n")
		b.WriteString(ansi.Truncate(e.String(), textWidth, "..."))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(b.String())
}
