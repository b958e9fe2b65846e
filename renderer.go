package mdpage

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/alnah/go-mdpage/internal/camo"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter     = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HTMLPostprocessor = (*pipeline.Postprocessor)(nil)
	_ pipeline.EmojiExpander     = pipeline.ShortcodeExpander{}
	_ pipeline.ImageProxy        = (*camo.Builder)(nil)
)

// Renderer turns Markdown into post-processed HTML fragments.
// Create with NewRenderer. A Renderer is safe for concurrent use.
type Renderer struct {
	cfg           rendererConfig
	logger        *slog.Logger
	emoji         EmojiExpander
	htmlConverter pipeline.HTMLConverter
	postprocessor pipeline.HTMLPostprocessor
	styleSheet    string
}

// NewRenderer creates a Renderer with default configuration.
// Returns an error if the image proxy or highlight style is invalid.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:    rendererConfig{style: pipeline.DefaultHighlightStyle},
		logger: slog.New(slog.DiscardHandler),
		emoji:  pipeline.ShortcodeExpander{},
	}

	for _, opt := range opts {
		opt(r)
	}

	css, err := pipeline.StyleSheet(r.cfg.style)
	if err != nil {
		return nil, err
	}
	r.styleSheet = css

	// Injected by tests when already set.
	if r.htmlConverter == nil {
		proxy, err := camo.New(r.cfg.proxyHost, r.cfg.proxyKey)
		if err != nil {
			return nil, fmt.Errorf("configuring image proxy: %w", err)
		}
		gopts := pipeline.GoldmarkOptions{RawHTML: r.cfg.rawHTML}
		if proxy != nil {
			gopts.Proxy = proxy
		}
		r.htmlConverter = pipeline.NewGoldmarkConverter(gopts)
	}

	if r.postprocessor == nil {
		r.postprocessor = pipeline.NewPostprocessor(r.logger)
	}

	return r, nil
}

// Render converts input to an HTML fragment.
// The context is checked between stages. Recovers from internal panics to
// prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (out template.HTML, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if input.Markdown == "" {
		return "", nil
	}

	md := input.Markdown
	if r.emoji != nil {
		md = r.emoji.Expand(md)
	}

	fragment, err := r.htmlConverter.ToHTML(ctx, md, input.ImageClasses)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	processed, err := r.postprocessor.Postprocess(ctx, fragment)
	if err != nil {
		return "", fmt.Errorf("post-processing HTML: %w", err)
	}

	// #nosec G203 -- text was escaped by the Markdown stage
	return template.HTML(processed), nil
}

// RenderString renders markdown with the given image classes and no
// cancellation.
func (r *Renderer) RenderString(markdown, imageClasses string) (template.HTML, error) {
	return r.Render(context.Background(), Input{Markdown: markdown, ImageClasses: imageClasses})
}

// StyleSheet returns the CSS for the renderer's highlight style.
func (r *Renderer) StyleSheet() string {
	return r.styleSheet
}

// StyleSheet returns the CSS for the named chroma style ("" = github).
func StyleSheet(name string) (string, error) {
	return pipeline.StyleSheet(name)
}
