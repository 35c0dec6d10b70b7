package tui

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/clive/counterdash/internal/auth"
	"github.com/clive/counterdash/internal/config"
	"github.com/clive/counterdash/internal/session"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeLogin     ViewMode = iota // Sign-in form (initial)
	ViewModeDashboard                 // Signed-in dashboard
	ViewModeHelp                      // Help overlay over the dashboard
)

// String returns the view name used in logs
func (v ViewMode) String() string {
	switch v {
	case ViewModeDashboard:
		return "dashboard"
	case ViewModeHelp:
		return "help"
	default:
		return "login"
	}
}

const activityPanelWidth = 44

// Model is the root Bubble Tea model. It owns the session controller
// and switches between the sign-in form and the dashboard.
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// View state
	viewMode ViewMode

	// Session state, shared with nothing else
	session       *session.Controller
	authenticator auth.Authenticator

	// Screens
	login     LoginModel
	dashboard DashboardModel

	// Chrome
	keys     KeyMap
	help     help.Model
	activity ActivityPanel

	logger *slog.Logger
}

// NewRootModel creates the root model in the signed-out state.
// A nil cfg uses defaults; a nil logger discards output.
func NewRootModel(cfg *config.Config, ctrl *session.Controller, authenticator auth.Authenticator, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if ctrl == nil {
		ctrl = session.NewController(logger)
	}
	if authenticator == nil {
		authenticator = auth.NewSimulated(cfg.LoginDelay)
	}

	return Model{
		viewMode:      ViewModeLogin,
		session:       ctrl,
		authenticator: authenticator,
		login:         NewLoginModel(authenticator, logger),
		dashboard:     NewDashboardModel(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		activity:      NewActivityPanel(cfg.Debug),
		logger:        logger,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

// ViewMode returns the current view
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Session returns the controller owned by this model
func (m Model) Session() *session.Controller {
	return m.session
}

// Login returns the sign-in form
func (m Model) Login() LoginModel {
	return m.login
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LoggedInMsg:
		m.session.Login(msg.Email, msg.Password)
		m.activity.Record("login", msg.Email)
		m.setViewMode(ViewModeDashboard)
		m.dashboard = NewDashboardModel()
		// The form state is not kept past a successful sign-in
		m.login = NewLoginModel(m.authenticator, m.logger)
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always quits, regardless of state
		if key.Matches(msg, m.keys.Interrupt) {
			return m, tea.Quit
		}

		switch m.viewMode {
		case ViewModeDashboard:
			return m.updateDashboard(msg)
		case ViewModeHelp:
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
				m.setViewMode(ViewModeDashboard)
			}
			return m, nil
		}
	}

	// Everything else belongs to the sign-in form while it is shown
	if m.viewMode == ViewModeLogin {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.setViewMode(ViewModeHelp)
		return m, nil
	}

	var action Action
	m.dashboard, action = m.dashboard.Update(msg)
	cmd := m.apply(action)
	return m, cmd
}

// apply runs a dashboard trigger against the session controller
func (m *Model) apply(action Action) tea.Cmd {
	switch action {
	case ActionIncrement:
		m.session.Increment()
	case ActionDecrement:
		m.session.Decrement()
	case ActionReset:
		m.session.Reset()
	case ActionLogout:
		m.session.Logout()
		m.activity.Record("logout", "")
		m.setViewMode(ViewModeLogin)
		m.login = NewLoginModel(m.authenticator, m.logger)
		return m.login.Init()
	default:
		return nil
	}

	m.activity.Record(strings.ToLower(action.String()), "count="+itoa(m.session.Count()))
	return nil
}

func (m *Model) setViewMode(v ViewMode) {
	if m.viewMode != v {
		m.logger.Debug("view changed", "from", m.viewMode.String(), "to", v.String())
	}
	m.viewMode = v
}

// View renders the UI
func (m Model) View() string {
	var body string
	switch m.viewMode {
	case ViewModeHelp:
		body = m.helpView()
	case ViewModeDashboard:
		body = m.dashboard.Render(m.session.Identity(), m.session.Count())
	default:
		body = m.login.View()
	}

	statusBar := m.renderStatusBar()

	// Before the first WindowSizeMsg there is nothing to center against
	if m.width == 0 || m.height == 0 {
		return body + "\n" + statusBar
	}

	mainWidth := m.width
	bodyHeight := m.height - 1 // status bar
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var panel string
	if m.activity.Enabled() && m.width > activityPanelWidth*2 {
		mainWidth = m.width - activityPanelWidth - 2
		panel = m.activity.Render(activityPanelWidth, bodyHeight-2)
	}

	main := lipgloss.Place(mainWidth, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	if panel != "" {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, panel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

// renderStatusBar renders the context sensitive key hints
func (m Model) renderStatusBar() string {
	var hints string
	switch m.viewMode {
	case ViewModeLogin:
		hints = m.help.ShortHelpView(m.keys.LoginHelp())
	case ViewModeHelp:
		hints = m.help.ShortHelpView([]key.Binding{m.keys.Escape, m.keys.Quit})
	default:
		hints = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return StatusBarStyle.Render(hints)
}

// helpView renders the help overlay
func (m Model) helpView() string {
	var content strings.Builder
	content.WriteString(HelpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	for _, group := range m.keys.FullHelp() {
		content.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			content.WriteString(HelpKeyStyle.Render(padRight(h.Key, 14)))
			content.WriteString(HelpDescStyle.Render(h.Desc))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(DimStyle.Render("Press ? or Esc to close"))

	return HelpStyle.Render(content.String())
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
