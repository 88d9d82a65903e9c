package mdll

// RenderOption configures terminal rendering.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8            bool
	softWrap        bool
	keepFrontMatter bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithSoftWrap hard-breaks words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithFrontMatter keeps a leading front matter block in the rendered
// document instead of dropping it.
func WithFrontMatter(keep bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.keepFrontMatter = keep
	}
}
