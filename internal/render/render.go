package render

import "github.com/diogo/chatkit/internal/config"

// Markdown renders assistant Markdown content for terminal display.
// Renderers are pooled per unique option set, so repeated calls with the
// same options reuse the underlying glamour renderer.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// LoadOptionsFromConfig resolves render options from the persisted user
// configuration. A missing or unreadable config file yields the defaults;
// the GLAMOUR_STYLE environment variable wins over the file value (the
// config loader applies it).
func LoadOptionsFromConfig() Options {
	opts := DefaultOptions()

	cfg, err := config.LoadConfig()
	if err != nil {
		return opts
	}

	md := cfg.Markdown
	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines

	return opts
}

// LoadOptionsFromConfigWithWidth resolves options from config at a
// specific output width.
func LoadOptionsFromConfigWithWidth(width int) Options {
	return LoadOptionsFromConfig().WithWidth(width)
}
