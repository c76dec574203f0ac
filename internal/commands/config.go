package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diogo/chatkit/internal/config"
	"github.com/diogo/chatkit/internal/widget"
)

var initConfigFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
	Long: `Show the resolved configuration and where it lives.

With --init, writes the default configuration to disk so it can be
edited by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initConfigFlag {
			if err := config.SaveConfig(config.DefaultConfig()); err != nil {
				return err
			}
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		fmt.Printf("config file: %s\n\n%s\n", path, data)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a single configuration value and write it back to disk.

Supported keys: endpoint, position, sample_mode, copy_to_clipboard,
markdown.style, markdown.enable_emoji, markdown.preserve_newlines,
messages.placeholder, messages.user_name, messages.assistant_name,
theme.primary, theme.secondary, theme.background, theme.text_color,
animation.duration, animation.bounce.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if err := applyConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Printf("set %s = %s\n", args[0], args[1])
		return nil
	},
}

// applyConfigValue updates one config field addressed by a dotted key.
func applyConfigValue(cfg *config.Config, key, value string) error {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		return b, nil
	}
	parseFloat := func() (float64, error) {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q for %s", value, key)
		}
		return f, nil
	}

	switch key {
	case "endpoint":
		cfg.Endpoint = value
	case "position":
		if !widget.Position(value).Valid() {
			return fmt.Errorf("unknown position %q", value)
		}
		cfg.Position = value
	case "sample_mode":
		b, err := parseBool()
		if err != nil {
			return err
		}
		cfg.SampleMode = b
	case "copy_to_clipboard":
		b, err := parseBool()
		if err != nil {
			return err
		}
		cfg.CopyToClipboard = b
	case "markdown.style":
		cfg.Markdown.Style = value
	case "markdown.enable_emoji":
		b, err := parseBool()
		if err != nil {
			return err
		}
		cfg.Markdown.EnableEmoji = b
	case "markdown.preserve_newlines":
		b, err := parseBool()
		if err != nil {
			return err
		}
		cfg.Markdown.PreserveNewLines = b
	case "messages.placeholder":
		cfg.Messages.Placeholder = value
	case "messages.user_name":
		cfg.Messages.UserName = value
	case "messages.assistant_name":
		cfg.Messages.AssistantName = value
	case "theme.primary":
		cfg.Theme.Primary = value
	case "theme.secondary":
		cfg.Theme.Secondary = value
	case "theme.background":
		cfg.Theme.Background = value
	case "theme.text_color":
		cfg.Theme.TextColor = value
	case "animation.duration":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		cfg.Animation.Duration = f
	case "animation.bounce":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		cfg.Animation.Bounce = f
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func init() {
	configCmd.Flags().BoolVar(&initConfigFlag, "init", false, "Write the default config file")
	configCmd.AddCommand(configSetCmd)
}
