package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatkit/internal/render"
	"github.com/diogo/chatkit/internal/widget"
)

// Animation tick message
type animationTickMsg time.Time

// replyResolvedMsg is sent when a pending send has applied its outcome
// to the controller, whatever that outcome was.
type replyResolvedMsg struct{}

// clipboardResultMsg reports the result of a copy-to-clipboard attempt.
type clipboardResultMsg struct {
	err error
}

// ModelOption configures the widget surface.
type ModelOption func(*Model)

// WithRenderOptions sets the markdown render options used for assistant
// messages. Width is managed by the model; the other fields are honored.
func WithRenderOptions(opts render.Options) ModelOption {
	return func(m *Model) {
		m.renderOpts = opts
	}
}

// WithAutoCopy copies each assistant reply to the clipboard as it arrives.
func WithAutoCopy(enabled bool) ModelOption {
	return func(m *Model) {
		m.autoCopy = enabled
	}
}

// Model is the bubbletea surface over the widget controller.
type Model struct {
	ctrl       *widget.Controller
	styles     Styles
	renderOpts render.Options
	autoCopy   bool

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	ready          bool
	animationFrame int
	launcherFrame  int
	statusNote     string

	// Dimensions
	width  int
	height int
}

// New creates the widget surface for a controller. Styles are resolved
// from the theme tokens here, once.
func New(ctrl *widget.Controller, opts ...ModelOption) Model {
	cfg := ctrl.Config()
	styles := NewStyles(cfg.Theme)

	ta := textarea.New()
	ta.Placeholder = cfg.Messages.Placeholder
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(styles.Text)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = styles.Loading

	m := Model{
		ctrl:       ctrl,
		styles:     styles,
		renderOpts: render.DefaultOptions(),
		textarea:   ta,
		spinner:    s,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.animationTick(),
	)
}

// animationTick paces the typing indicator and launcher pulse from the
// configured animation duration.
func (m Model) animationTick() tea.Cmd {
	interval := time.Duration(m.ctrl.Config().Animation.Duration * float64(time.Second))
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+t":
			// Toggle only flips visibility; an in-flight send keeps going
			m.ctrl.Toggle()
			m.statusNote = ""

		case "esc":
			if m.ctrl.IsOpen() {
				m.ctrl.Toggle()
			} else {
				return m, tea.Quit
			}

		case "ctrl+y":
			if m.ctrl.IsOpen() {
				return m, m.copyLastReply()
			}

		case "enter":
			if !m.ctrl.IsOpen() {
				m.ctrl.Toggle()
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			// Enter is always consumed here; letting it reach the
			// textarea would insert a stray newline.
			m.ctrl.UpdateDraft(m.textarea.Value())
			p, ok := m.ctrl.BeginSend()
			if !ok {
				return m, nil
			}

			m.textarea.Reset()
			m.statusNote = ""
			m.updateViewport()
			m.viewport.GotoBottom()

			if p == nil {
				return m, nil
			}
			m.animationFrame = 0
			return m, tea.Batch(m.resolveReply(p), m.spinner.Tick)
		}

	case replyResolvedMsg:
		m.updateViewport()
		m.viewport.GotoBottom()
		if m.autoCopy {
			cmds = append(cmds, m.copyLastReply())
		}

	case clipboardResultMsg:
		if msg.err != nil {
			m.statusNote = m.styles.Error.Render(fmt.Sprintf("⚠ Copy failed: %v", msg.err))
		} else {
			m.statusNote = m.styles.Hint.Render("✓ Copied last reply")
		}

	case spinner.TickMsg:
		if m.ctrl.Pending() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		m.animationFrame++
		m.launcherFrame++
		cmds = append(cmds, m.animationTick())
	}

	// Only pass KeyMsg to the textarea, and only while the panel is open
	// and idle, to prevent escape sequence leaks
	if m.ctrl.IsOpen() && !m.ctrl.Pending() {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resolveReply waits for the pending send off the UI loop. There is no
// cancellation path: the wait runs to completion.
func (m Model) resolveReply(p *widget.PendingSend) tea.Cmd {
	return func() tea.Msg {
		p.Wait(context.Background())
		return replyResolvedMsg{}
	}
}

// copyLastReply copies the newest assistant message to the clipboard.
func (m Model) copyLastReply() tea.Cmd {
	return func() tea.Msg {
		msgs := m.ctrl.Messages()
		for i := len(msgs) - 1; i >= 0; i-- {
			if msgs[i].Role == widget.RoleAssistant {
				return clipboardResultMsg{err: clipboard.WriteAll(msgs[i].Content)}
			}
		}
		return clipboardResultMsg{err: fmt.Errorf("no assistant reply yet")}
	}
}

// resize recomputes component dimensions from the window size.
func (m *Model) resize() {
	headerHeight := 4
	inputHeight := 6
	statusHeight := 1
	padding := 2

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
	if vpHeight < 5 {
		vpHeight = 5
	}

	contentWidth := m.panelWidth()

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.textarea.SetWidth(contentWidth - 4)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
		m.textarea.SetWidth(contentWidth - 4)
	}
	m.updateViewport()
}

// panelWidth is the width of the open widget panel.
func (m Model) panelWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the widget anchored to its configured corner.
func (m Model) View() string {
	if !m.ready {
		return m.styles.Loading.Render("  Initializing...")
	}

	var content string
	if m.ctrl.IsOpen() {
		content = m.renderPanel()
	} else {
		content = m.renderLauncher()
	}

	h, v := m.anchor()
	return lipgloss.Place(m.width, m.height, h, v, content)
}

// anchor maps the configured corner to lipgloss placement.
func (m Model) anchor() (lipgloss.Position, lipgloss.Position) {
	switch m.ctrl.Config().Position {
	case widget.PositionBottomLeft:
		return lipgloss.Left, lipgloss.Bottom
	case widget.PositionTopRight:
		return lipgloss.Right, lipgloss.Top
	case widget.PositionTopLeft:
		return lipgloss.Left, lipgloss.Top
	default:
		return lipgloss.Right, lipgloss.Bottom
	}
}

// renderLauncher renders the closed-state chip.
func (m Model) renderLauncher() string {
	cfg := m.ctrl.Config()

	label := "💬 " + cfg.Messages.AssistantName
	if m.ctrl.Pending() {
		label = m.spinner.View() + " " + cfg.Messages.AssistantName
	} else if cfg.Animation.Bounce > 0 && m.launcherFrame%10 < 2 {
		label = "💬 " + m.styles.Title.Render(cfg.Messages.AssistantName)
	}

	hint := m.styles.Hint.Render("enter to open · esc to quit")
	return lipgloss.JoinVertical(lipgloss.Right, m.styles.Launcher.Render(label), hint)
}

// renderPanel renders the open chat panel.
func (m Model) renderPanel() string {
	cfg := m.ctrl.Config()
	var sections []string
	contentWidth := m.panelWidth()

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.styles.Title.Render("💬 "+cfg.Messages.AssistantName),
	)
	sections = append(sections, m.styles.Header.Width(contentWidth).Render(headerContent))

	var messagesContent string
	if len(m.ctrl.Messages()) == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, m.styles.MessagesArea.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	var inputContent string
	if m.ctrl.Pending() {
		inputContent = m.renderTypingIndicator()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.InputLabel.Render(cfg.Messages.UserName),
			m.textarea.View(),
		)
	}
	sections = append(sections, m.styles.InputPanel.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.statusNote != "" {
		sections = append(sections, m.statusNote)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the empty-log placeholder.
func (m Model) renderWelcome() string {
	cfg := m.ctrl.Config()
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := m.styles.WelcomeIcon.Width(width).Render("💬")
	title := m.styles.WelcomeTitle.Width(width).Render(cfg.Messages.AssistantName)
	subtitle := m.styles.Welcome.Width(width).Render("Start a conversation by typing a message below")

	content := lipgloss.JoinVertical(lipgloss.Center, "", icon, "", title, "", subtitle, "")

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderTypingIndicator renders the animated pending state.
func (m Model) renderTypingIndicator() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	dots := ""
	numDots := frame % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(m.styles.Text).
		Render(" " + m.ctrl.Config().Messages.AssistantName + " is typing ")

	return fmt.Sprintf("%s%s%s", spin, text, dots)
}

// renderStatusBar renders the bottom shortcut bar.
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+T", "Hide"},
		{"Ctrl+Y", "Copy reply"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			m.styles.StatusKey.Render(s.key),
			m.styles.StatusDesc.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return m.styles.StatusBar.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages.
func (m *Model) updateViewport() {
	cfg := m.ctrl.Config()
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.ctrl.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == widget.RoleUser {
			label := m.styles.UserLabel.Render("⬤ " + cfg.Messages.UserName)
			bubble := m.styles.UserBubble.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := m.styles.AssistantLabel.Render("💬 " + cfg.Messages.AssistantName)

			// Assistant content is Markdown
			rendered, err := render.Markdown(msg.Content, m.renderOpts.WithWidth(bubbleWidth-4))
			if err != nil {
				rendered = msg.Content
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := m.styles.AssistantBubble.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// Run starts the widget TUI for a controller.
func Run(ctrl *widget.Controller, opts ...ModelOption) error {
	p := tea.NewProgram(
		New(ctrl, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
