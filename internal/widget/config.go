package widget

import "context"

// Position is the corner the widget anchors to.
type Position string

// Corner anchors
const (
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
)

// Valid reports whether p is a known corner anchor.
func (p Position) Valid() bool {
	switch p {
	case PositionBottomRight, PositionBottomLeft, PositionTopRight, PositionTopLeft:
		return true
	}
	return false
}

// Handler is a caller-supplied reply strategy. It receives the sent text
// and is responsible for any downstream update (typically appending its
// own reply via the controller); the controller only manages the pending
// flag around the call.
type Handler func(ctx context.Context, message string) error

// Theme holds the visual palette tokens.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	TextColor  string `json:"textColor"`
}

// Strings holds the caller-facing display strings.
type Strings struct {
	Placeholder   string `json:"placeholder"`
	UserName      string `json:"userName"`
	AssistantName string `json:"assistantName"`
}

// Animation holds transition timing tokens. Duration is in seconds.
type Animation struct {
	Duration float64 `json:"duration"`
	Bounce   float64 `json:"bounce"`
}

// Endpoint configures the HTTP reply strategy.
type Endpoint struct {
	URL     string            `json:"endpoint"`
	Headers map[string]string `json:"headers"`
}

// Config is the caller-supplied widget configuration. All fields are
// optional; zero values fall back to the documented defaults.
type Config struct {
	Theme           Theme
	Messages        Strings
	Animation       Animation
	API             Endpoint
	Position        Position
	SampleMode      bool
	InitialMessages []Message
	OnSendMessage   Handler
}

// DefaultTheme returns the blue/purple/slate/white palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:    "#3b82f6", // blue
		Secondary:  "#8b5cf6", // purple
		Background: "#1e293b", // slate
		TextColor:  "#ffffff", // white
	}
}

// DefaultStrings returns the default display strings.
func DefaultStrings() Strings {
	return Strings{
		Placeholder:   "Type your message...",
		UserName:      "User",
		AssistantName: "AI Assistant",
	}
}

// DefaultAnimation returns the default transition timing.
func DefaultAnimation() Animation {
	return Animation{
		Duration: 0.2,
		Bounce:   1,
	}
}

// DefaultConfig returns a config with every default applied and no reply
// strategy configured.
func DefaultConfig() Config {
	return Config{
		Theme:     DefaultTheme(),
		Messages:  DefaultStrings(),
		Animation: DefaultAnimation(),
		Position:  PositionBottomRight,
	}
}

// withDefaults fills zero-valued fields with their defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Theme.Primary == "" {
		c.Theme.Primary = def.Theme.Primary
	}
	if c.Theme.Secondary == "" {
		c.Theme.Secondary = def.Theme.Secondary
	}
	if c.Theme.Background == "" {
		c.Theme.Background = def.Theme.Background
	}
	if c.Theme.TextColor == "" {
		c.Theme.TextColor = def.Theme.TextColor
	}
	if c.Messages.Placeholder == "" {
		c.Messages.Placeholder = def.Messages.Placeholder
	}
	if c.Messages.UserName == "" {
		c.Messages.UserName = def.Messages.UserName
	}
	if c.Messages.AssistantName == "" {
		c.Messages.AssistantName = def.Messages.AssistantName
	}
	if c.Animation.Duration <= 0 {
		c.Animation.Duration = def.Animation.Duration
	}
	if c.Animation.Bounce <= 0 {
		c.Animation.Bounce = def.Animation.Bounce
	}
	if !c.Position.Valid() {
		c.Position = def.Position
	}

	return c
}
