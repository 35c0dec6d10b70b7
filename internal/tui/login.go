package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/clive/counterdash/internal/auth"
)

// Visible text of the sign-in screen
const (
	loginTitle          = "Welcome Back"
	loginSubtitle       = "Please enter your details"
	emailLabel          = "Email"
	emailPlaceholder    = "Enter your email"
	passwordLabel       = "Password"
	passwordPlaceholder = "Enter your password"
	signInLabel         = "Sign In"
	signingInLabel      = "Signing in..."
)

const inputWidth = 32

// loginFocus is the element of the form that receives keys
type loginFocus int

const (
	focusEmail loginFocus = iota
	focusPassword
	focusSubmit
	focusCount
)

// LoggedInMsg hands the submitted credentials to the session owner.
// It is sent exactly once per successful submission.
type LoggedInMsg struct {
	Email    string
	Password string
}

// authResultMsg is sent when the authenticator returns
type authResultMsg struct {
	email    string
	password string
	err      error
}

// LoginModel is the sign-in form. Its state is local until submission completes.
type LoginModel struct {
	email    textinput.Model
	password textinput.Model
	spinner  spinner.Model
	focus    loginFocus

	submitting bool
	err        string

	authenticator auth.Authenticator
	keys          KeyMap
	logger        *slog.Logger
}

// NewLoginModel creates an empty sign-in form with the email field focused
func NewLoginModel(authenticator auth.Authenticator, logger *slog.Logger) LoginModel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	email := textinput.New()
	email.Placeholder = emailPlaceholder
	email.Prompt = "❯ "
	email.PromptStyle = InputPromptStyle
	email.PlaceholderStyle = PlaceholderStyle
	email.CharLimit = 0 // No limit
	email.Width = inputWidth
	email.Focus()

	password := textinput.New()
	password.Placeholder = passwordPlaceholder
	password.Prompt = "❯ "
	password.PromptStyle = InputPromptStyle
	password.PlaceholderStyle = PlaceholderStyle
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 0 // No limit
	password.Width = inputWidth

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return LoginModel{
		email:         email,
		password:      password,
		spinner:       s,
		focus:         focusEmail,
		authenticator: authenticator,
		keys:          DefaultKeyMap(),
		logger:        logger,
	}
}

// Init starts the cursor blinking
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Email returns the current email field value
func (m LoginModel) Email() string {
	return m.email.Value()
}

// Password returns the current password field value
func (m LoginModel) Password() string {
	return m.password.Value()
}

// Submitting reports whether a sign-in is in flight
func (m LoginModel) Submitting() bool {
	return m.submitting
}

// SubmitDisabled reports whether the Sign In trigger accepts presses
func (m LoginModel) SubmitDisabled() bool {
	return m.submitting
}

// SubmitLabel returns the visible label of the trigger
func (m LoginModel) SubmitLabel() string {
	if m.submitting {
		return signingInLabel
	}
	return signInLabel
}

// Update handles keys, spinner frames and the authenticator result
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		// Stale results (no submission in flight) are dropped
		if !m.submitting {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.logger.Warn("sign-in failed", "email", msg.email, "error", msg.err)
			m.err = msg.err.Error()
			cmd := m.setFocus(focusSubmit)
			return m, cmd
		}
		m.logger.Debug("sign-in accepted", "email", msg.email)
		email, password := msg.email, msg.password
		return m, func() tea.Msg {
			return LoggedInMsg{Email: email, Password: password}
		}

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// The trigger is disabled while submitting: swallow every key
		if m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.NextField):
			cmd := m.setFocus((m.focus + 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.PrevField):
			cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.Submit):
			if m.focus == focusEmail {
				cmd := m.setFocus(focusPassword)
				return m, cmd
			}
			return m.submit()
		}
	}

	// Remaining messages (keystrokes, cursor blinks) go to the focused input
	var cmd tea.Cmd
	switch m.focus {
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// setFocus moves keyboard focus and returns the cursor command of the newly focused input
func (m *LoginModel) setFocus(f loginFocus) tea.Cmd {
	m.focus = f
	m.email.Blur()
	m.password.Blur()

	switch f {
	case focusEmail:
		return m.email.Focus()
	case focusPassword:
		return m.password.Focus()
	}
	return nil
}

// submit enters the submitting state and starts the credential check
func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	m.submitting = true
	m.err = ""
	m.focus = focusSubmit
	m.email.Blur()
	m.password.Blur()

	email, password := m.email.Value(), m.password.Value()
	m.logger.Info("sign-in submitted", "email", email)

	return m, tea.Batch(
		m.spinner.Tick,
		authenticateCmd(m.authenticator, email, password),
	)
}

// authenticateCmd runs the credential check off the update loop
func authenticateCmd(a auth.Authenticator, email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.Authenticate(context.Background(), email, password)
		return authResultMsg{email: email, password: password, err: err}
	}
}

// View renders the sign-in card
func (m LoginModel) View() string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render(loginTitle))
	content.WriteString("\n")
	content.WriteString(SubtitleStyle.Render(loginSubtitle))
	content.WriteString("\n\n")

	content.WriteString(m.renderField(emailLabel, m.email, m.focus == focusEmail))
	content.WriteString("\n")
	content.WriteString(m.renderField(passwordLabel, m.password, m.focus == focusPassword))
	content.WriteString("\n\n")

	content.WriteString(m.renderSubmit())

	if m.err != "" {
		content.WriteString("\n\n")
		content.WriteString(ErrorStyle.Render("⚠ " + m.err))
	}

	return CardStyle.Render(content.String())
}

func (m LoginModel) renderField(label string, input textinput.Model, focused bool) string {
	style := InputStyle
	if focused {
		style = InputFocusedStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render(label),
		style.Render(input.View()),
	)
}

func (m LoginModel) renderSubmit() string {
	if m.submitting {
		return ButtonDisabledStyle.Render(m.spinner.View() + " " + signingInLabel)
	}
	if m.focus == focusSubmit {
		return ButtonFocusedStyle.Render(signInLabel)
	}
	return ButtonStyle.Render(signInLabel)
}
