// Package config handles persisted user configuration for chatkit.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diogo/chatkit/internal/widget"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // "dark", "light", or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
}

// Config represents the user configuration. Field defaults mirror the
// widget defaults so an absent file behaves like an unconfigured widget.
type Config struct {
	Theme     widget.Theme     `json:"theme"`
	Messages  widget.Strings   `json:"messages"`
	Animation widget.Animation `json:"animation"`
	// Endpoint is the HTTP reply strategy target; empty disables it.
	Endpoint string `json:"endpoint,omitempty"`
	// Headers are merged over the default Content-Type on each request.
	Headers    map[string]string `json:"headers,omitempty"`
	Position   string            `json:"position"`
	SampleMode bool              `json:"sample_mode"`
	// CopyToClipboard copies each assistant reply to the clipboard as it
	// arrives.
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	def := widget.DefaultConfig()
	return Config{
		Theme:           def.Theme,
		Messages:        def.Messages,
		Animation:       def.Animation,
		Position:        string(def.Position),
		SampleMode:      false,
		CopyToClipboard: false,
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".chatkit"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults without error. The CHATKIT_ENDPOINT environment variable takes
// precedence over the file value.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return applyEnv(cfg), nil
}

// SaveConfig writes the configuration to disk
func SaveConfig(cfg Config) error {
	if _, err := EnsureConfigDir(); err != nil {
		return err
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays environment overrides onto the config.
func applyEnv(cfg Config) Config {
	if endpoint := os.Getenv("CHATKIT_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		cfg.Markdown.Style = style
	}
	return cfg
}

// WidgetConfig converts the persisted config into a widget configuration.
func (c Config) WidgetConfig() widget.Config {
	return widget.Config{
		Theme:      c.Theme,
		Messages:   c.Messages,
		Animation:  c.Animation,
		API:        widget.Endpoint{URL: c.Endpoint, Headers: c.Headers},
		Position:   widget.Position(c.Position),
		SampleMode: c.SampleMode,
	}
}
