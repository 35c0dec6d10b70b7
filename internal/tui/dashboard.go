package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/clive/counterdash/internal/model"
)

// Visible text of the dashboard
const (
	dashboardTitle = "Welcome!"
	countLabel     = "Current count"
)

// Action is a dashboard trigger, mapped 1:1 to a session operation
type Action int

const (
	ActionNone Action = iota
	ActionIncrement
	ActionDecrement
	ActionReset
	ActionLogout
)

// String returns the trigger label
func (a Action) String() string {
	switch a {
	case ActionIncrement:
		return "Increment"
	case ActionDecrement:
		return "Decrement"
	case ActionReset:
		return "Reset"
	case ActionLogout:
		return "Logout"
	default:
		return ""
	}
}

// Triggers in focus order
var dashboardActions = []Action{ActionIncrement, ActionDecrement, ActionReset, ActionLogout}

// DashboardModel renders the signed-in screen. It holds no domain state:
// identity and count are passed in on every render.
type DashboardModel struct {
	focused int // index into dashboardActions
	keys    KeyMap
}

// NewDashboardModel creates a dashboard with the Increment trigger focused
func NewDashboardModel() DashboardModel {
	return DashboardModel{keys: DefaultKeyMap()}
}

// Focused returns the trigger that has keyboard focus
func (d DashboardModel) Focused() Action {
	return dashboardActions[d.focused]
}

// Update maps a key to a trigger. Moving focus returns ActionNone.
func (d DashboardModel) Update(msg tea.KeyMsg) (DashboardModel, Action) {
	switch {
	case key.Matches(msg, d.keys.Increment):
		return d, ActionIncrement
	case key.Matches(msg, d.keys.Decrement):
		return d, ActionDecrement
	case key.Matches(msg, d.keys.Reset):
		return d, ActionReset
	case key.Matches(msg, d.keys.Logout):
		return d, ActionLogout
	case key.Matches(msg, d.keys.NextButton):
		d.focused = (d.focused + 1) % len(dashboardActions)
	case key.Matches(msg, d.keys.PrevButton):
		d.focused = (d.focused + len(dashboardActions) - 1) % len(dashboardActions)
	case key.Matches(msg, d.keys.Press):
		return d, d.Focused()
	}
	return d, ActionNone
}

// Render draws the dashboard card for the given identity and counter value
func (d DashboardModel) Render(identity model.Identity, count int) string {
	var content strings.Builder

	avatar := AvatarStyle.Render(identity.AvatarGlyph())
	content.WriteString(avatar)
	content.WriteString("\n\n")

	content.WriteString(TitleStyle.Render(dashboardTitle))
	content.WriteString("\n")
	content.WriteString(EmailStyle.Render(identity.Email))
	content.WriteString("\n\n")

	content.WriteString(CountLabelStyle.Render(countLabel))
	content.WriteString("\n")
	content.WriteString(CountStyle.Render(strconv.Itoa(count)))
	content.WriteString("\n\n")

	counterButtons := make([]string, 0, 3)
	for _, a := range dashboardActions[:3] {
		counterButtons = append(counterButtons, d.renderButton(a))
	}
	content.WriteString(strings.Join(counterButtons, " "))
	content.WriteString("\n")
	content.WriteString(DividerStyle.Render(strings.Repeat("─", 36)))
	content.WriteString("\n")
	content.WriteString(d.renderButton(ActionLogout))

	return CardStyle.Render(lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(content.String()))
}

func (d DashboardModel) renderButton(a Action) string {
	focused := d.Focused() == a
	switch {
	case a == ActionLogout && focused:
		return LogoutButtonFocusedStyle.Render(a.String())
	case a == ActionLogout:
		return LogoutButtonStyle.Render(a.String())
	case focused:
		return ButtonFocusedStyle.Render(a.String())
	default:
		return ButtonStyle.Render(a.String())
	}
}
