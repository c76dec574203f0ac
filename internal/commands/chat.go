package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/chatkit/internal/config"
	"github.com/diogo/chatkit/internal/render"
	"github.com/diogo/chatkit/internal/tui"
	"github.com/diogo/chatkit/internal/widget"
)

var (
	endpointFlag string
	headerFlags  []string
	sampleFlag   bool
	positionFlag string
	openFlag     bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat widget",
	Long: `Open the interactive chat widget.

Replies come from the configured HTTP endpoint, or from the canned
sample pool with --sample. With neither, sent messages get no reply.
Press Ctrl+T to hide the widget, Esc or Ctrl+C to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	chatCmd.Flags().StringVar(&endpointFlag, "endpoint", "", "HTTP reply endpoint URL")
	chatCmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, "Extra request header (key=value, repeatable)")
	chatCmd.Flags().BoolVar(&sampleFlag, "sample", false, "Reply from the canned sample pool")
	chatCmd.Flags().StringVar(&positionFlag, "position", "", "Corner anchor (bottom-right, bottom-left, top-right, top-left)")
	chatCmd.Flags().BoolVar(&openFlag, "open", false, "Start with the widget open")
}

func runChat() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	wcfg := cfg.WidgetConfig()

	if endpointFlag != "" {
		wcfg.API.URL = endpointFlag
	}
	if len(headerFlags) > 0 {
		headers, err := parseHeaders(headerFlags)
		if err != nil {
			return err
		}
		if wcfg.API.Headers == nil {
			wcfg.API.Headers = make(map[string]string)
		}
		for k, v := range headers {
			wcfg.API.Headers[k] = v
		}
	}
	if sampleFlag {
		wcfg.SampleMode = true
	}
	if positionFlag != "" {
		pos := widget.Position(positionFlag)
		if !pos.Valid() {
			return fmt.Errorf("unknown position %q", positionFlag)
		}
		wcfg.Position = pos
	}

	ctrl, err := widget.New(wcfg)
	if err != nil {
		return fmt.Errorf("failed to create widget: %w", err)
	}

	if openFlag {
		ctrl.Toggle()
	}

	return tui.Run(ctrl,
		tui.WithRenderOptions(render.LoadOptionsFromConfig()),
		tui.WithAutoCopy(cfg.CopyToClipboard),
	)
}

// parseHeaders turns repeated key=value flags into a header map.
func parseHeaders(pairs []string) (map[string]string, error) {
	headers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid header %q, expected key=value", pair)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}
