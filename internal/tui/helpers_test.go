package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/clive/counterdash/internal/auth"
	"github.com/clive/counterdash/internal/config"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// plain strips ANSI styling so views can be searched as text
func plain(s string) string {
	return ansi.Strip(s)
}

// execCmd runs cmd and flattens batches into their messages.
// Only call it on commands that return without waiting on a timer.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, execCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// newTestModel creates a root model with an instant authenticator
func newTestModel() Model {
	cfg := config.DefaultConfig()
	cfg.LoginDelay = 0
	return NewRootModel(cfg, nil, auth.NewSimulated(0), nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	rm, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return rm, cmd
}

// fillForm types credentials into the sign-in form
func fillForm(t *testing.T, m Model, email, password string) Model {
	t.Helper()
	if email != "" {
		m, _ = send(t, m, runes(email))
	}
	m, _ = send(t, m, keyOf(tea.KeyTab))
	if password != "" {
		m, _ = send(t, m, runes(password))
	}
	return m
}

// signIn submits the form and delivers the authenticator result and the handoff
func signIn(t *testing.T, m Model, email, password string) Model {
	t.Helper()
	m = fillForm(t, m, email, password)

	m, cmd := send(t, m, keyOf(tea.KeyEnter))
	if !m.Login().Submitting() {
		t.Fatal("expected form to be submitting after enter")
	}

	result, ok := findMsg[authResultMsg](execCmd(cmd))
	if !ok {
		t.Fatal("submit did not produce an authenticator result")
	}

	m, cmd = send(t, m, result)
	loggedIn, ok := findMsg[LoggedInMsg](execCmd(cmd))
	if !ok {
		t.Fatal("authenticator result did not produce LoggedInMsg")
	}

	m, _ = send(t, m, loggedIn)
	return m
}

// countShown returns the counter value as rendered under "Current count"
func countShown(t *testing.T, view string) string {
	t.Helper()
	lines := strings.Split(plain(view), "\n")
	for i, line := range lines {
		if strings.Contains(line, countLabel) && i+1 < len(lines) {
			return strings.Trim(lines[i+1], "│ ")
		}
	}
	t.Fatalf("no %q line in view:\n%s", countLabel, plain(view))
	return ""
}
