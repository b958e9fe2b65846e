package mdpage

import (
	"log/slog"

	"github.com/alnah/go-mdpage/internal/pipeline"
)

// Input contains rendering parameters.
type Input struct {
	Markdown     string // Markdown content (empty renders to empty output)
	ImageClasses string // Class attribute set on every <img> (optional)
}

// EmojiExpander replaces emoji shortcodes in Markdown before it is parsed.
type EmojiExpander = pipeline.EmojiExpander

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds settings resolved in NewRenderer.
type rendererConfig struct {
	proxyHost string
	proxyKey  string
	style     string
	rawHTML   bool
}

// WithImageProxy routes remote images through the Camo proxy at host,
// signing each URL with key. An empty host disables proxying.
func WithImageProxy(host, key string) Option {
	return func(r *Renderer) {
		r.cfg.proxyHost = host
		r.cfg.proxyKey = key
	}
}

// WithEmojiExpander replaces the default :shortcode: expander.
// Pass nil to leave shortcodes as written.
func WithEmojiExpander(e EmojiExpander) Option {
	return func(r *Renderer) {
		r.emoji = e
	}
}

// WithHighlightStyle sets the chroma style returned by StyleSheet.
// Unknown names make NewRenderer fail with ErrStyleNotFound.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.style = name
	}
}

// WithRawHTML keeps raw HTML found in the Markdown instead of dropping it.
// Only use it with trusted input: the output is not sanitized.
func WithRawHTML() Option {
	return func(r *Renderer) {
		r.cfg.rawHTML = true
	}
}

// WithLogger sets the logger used for skipped directives and pass tracing.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mdpage: WithLogger logger must not be nil")
	}
	return func(r *Renderer) {
		r.logger = l
	}
}
