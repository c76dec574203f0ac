package commands

import (
	"testing"

	"github.com/diogo/chatkit/internal/config"
)

func TestApplyConfigValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		check   func(cfg config.Config) bool
		wantErr bool
	}{
		{
			key:   "endpoint",
			value: "http://localhost:8080/api/chat",
			check: func(cfg config.Config) bool { return cfg.Endpoint == "http://localhost:8080/api/chat" },
		},
		{
			key:   "position",
			value: "top-left",
			check: func(cfg config.Config) bool { return cfg.Position == "top-left" },
		},
		{
			key:     "position",
			value:   "middle",
			wantErr: true,
		},
		{
			key:   "sample_mode",
			value: "true",
			check: func(cfg config.Config) bool { return cfg.SampleMode },
		},
		{
			key:   "copy_to_clipboard",
			value: "true",
			check: func(cfg config.Config) bool { return cfg.CopyToClipboard },
		},
		{
			key:     "copy_to_clipboard",
			value:   "yes please",
			wantErr: true,
		},
		{
			key:   "markdown.style",
			value: "light",
			check: func(cfg config.Config) bool { return cfg.Markdown.Style == "light" },
		},
		{
			key:   "markdown.enable_emoji",
			value: "false",
			check: func(cfg config.Config) bool { return !cfg.Markdown.EnableEmoji },
		},
		{
			key:   "messages.assistant_name",
			value: "Helper",
			check: func(cfg config.Config) bool { return cfg.Messages.AssistantName == "Helper" },
		},
		{
			key:   "theme.primary",
			value: "#ff0000",
			check: func(cfg config.Config) bool { return cfg.Theme.Primary == "#ff0000" },
		},
		{
			key:   "animation.duration",
			value: "0.5",
			check: func(cfg config.Config) bool { return cfg.Animation.Duration == 0.5 },
		},
		{
			key:     "animation.bounce",
			value:   "fast",
			wantErr: true,
		},
		{
			key:     "no_such_key",
			value:   "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyConfigValue(&cfg, tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyConfigValue failed: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("value not applied: %+v", cfg)
			}
		})
	}
}
