// Package tui provides the terminal surface for the chat widget.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatkit/internal/widget"
)

// Fixed auxiliary colors not covered by the four theme tokens
const (
	colorTextDim  = lipgloss.Color("#94a3b8")
	colorTextMute = lipgloss.Color("#475569")
	colorError    = lipgloss.Color("#f87171")
)

// Gradient colors for the animated typing indicator (fixed colors)
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"), // Red
	lipgloss.Color("#feca57"), // Yellow
	lipgloss.Color("#48dbfb"), // Cyan
	lipgloss.Color("#ff9ff3"), // Pink
	lipgloss.Color("#54a0ff"), // Blue
	lipgloss.Color("#5f27cd"), // Purple
	lipgloss.Color("#00d2d3"), // Teal
	lipgloss.Color("#1dd1a1"), // Green
}

// Styles holds every lipgloss style the widget renders with. It is built
// exactly once from the theme tokens at construction time; nothing
// assembles style strings at render time.
type Styles struct {
	// Theme colors resolved from config tokens
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color

	// Header panel
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Hint     lipgloss.Style

	// Messages area
	MessagesArea    lipgloss.Style
	UserBubble      lipgloss.Style
	UserLabel       lipgloss.Style
	AssistantBubble lipgloss.Style
	AssistantLabel  lipgloss.Style

	// Input area
	InputPanel lipgloss.Style
	InputLabel lipgloss.Style
	Loading    lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusDesc lipgloss.Style

	// Closed-state launcher chip
	Launcher lipgloss.Style

	// Welcome screen
	Welcome      lipgloss.Style
	WelcomeTitle lipgloss.Style
	WelcomeIcon  lipgloss.Style

	// Error text
	Error lipgloss.Style
}

// NewStyles resolves the theme tokens into concrete styles.
func NewStyles(theme widget.Theme) Styles {
	primary := lipgloss.Color(theme.Primary)
	secondary := lipgloss.Color(theme.Secondary)
	background := lipgloss.Color(theme.Background)
	text := lipgloss.Color(theme.TextColor)

	s := Styles{
		Primary:    primary,
		Secondary:  secondary,
		Background: background,
		Text:       text,
	}

	s.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(background).
		Padding(0, 2).
		MarginBottom(1)

	s.Title = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	s.Hint = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	s.MessagesArea = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(background).
		Padding(1)

	s.UserBubble = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1).
		MarginLeft(4)

	s.UserLabel = lipgloss.NewStyle().
		Foreground(secondary).
		Bold(true).
		MarginLeft(4)

	s.AssistantBubble = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Foreground(text).
		Padding(0, 1).
		MarginRight(4)

	s.AssistantLabel = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	s.InputPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(background).
		Padding(0, 1)

	s.InputLabel = lipgloss.NewStyle().
		Foreground(secondary).
		Bold(true)

	s.Loading = lipgloss.NewStyle().
		Foreground(primary)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(colorTextMute)

	s.StatusKey = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	s.StatusDesc = lipgloss.NewStyle().
		Foreground(colorTextDim)

	s.Launcher = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Foreground(text).
		Padding(0, 2).
		Bold(true)

	s.Welcome = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Align(lipgloss.Center)

	s.WelcomeTitle = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Align(lipgloss.Center)

	s.WelcomeIcon = lipgloss.NewStyle().
		Foreground(secondary).
		Align(lipgloss.Center)

	s.Error = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	return s
}
