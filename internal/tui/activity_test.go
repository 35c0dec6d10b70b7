package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC)
}

func TestActivityPanelDisabledIsNoop(t *testing.T) {
	p := NewActivityPanel(false)
	p.Record("login", "a@b.c")

	if len(p.Lines()) != 0 {
		t.Errorf("expected no lines, got %v", p.Lines())
	}
	if p.Render(40, 10) != "" {
		t.Error("expected empty render when disabled")
	}
}

func TestActivityPanelRecord(t *testing.T) {
	p := NewActivityPanel(true)
	p.now = fixedClock

	p.Record("login", "a@b.c")
	p.Record("logout", "")

	want := []string{"12:30:45.000 [login] a@b.c", "12:30:45.000 [logout]"}
	got := p.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestActivityPanelLimit(t *testing.T) {
	p := NewActivityPanel(true)
	for i := 0; i < 150; i++ {
		p.Record("increment", "")
	}
	if len(p.Lines()) != activityLimit {
		t.Errorf("expected %d entries kept, got %d", activityLimit, len(p.Lines()))
	}
}

func TestActivityPanelRenderShowsLatest(t *testing.T) {
	p := NewActivityPanel(true)
	for _, e := range []string{"first", "second", "third"} {
		p.Record(e, "")
	}

	// Room for a single entry
	view := plain(p.Render(40, 5))
	if !strings.Contains(view, "[third]") {
		t.Errorf("expected latest entry:\n%s", view)
	}
	if strings.Contains(view, "[first]") {
		t.Errorf("expected oldest entry scrolled away:\n%s", view)
	}
}

func TestActivityPanelTruncatesMultibyteByWidth(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"accented", strings.Repeat("é", 30) + "@x.com"},
		{"wide", strings.Repeat("例", 20) + "@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewActivityPanel(true)
			p.now = fixedClock
			p.Record("login", tt.email)

			width := 31
			view := p.Render(width, 10)
			if !utf8.ValidString(view) {
				t.Fatalf("render is not valid UTF-8: %q", view)
			}
			if !strings.Contains(plain(view), "...") {
				t.Errorf("expected a truncated entry:\n%s", plain(view))
			}
			for _, line := range strings.Split(view, "\n") {
				if w := lipgloss.Width(line); w > width+2 {
					t.Errorf("line width %d exceeds %d: %q", w, width+2, plain(line))
				}
			}
		})
	}
}
