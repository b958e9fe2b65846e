package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content, imageClasses string) (string, error)
}

// ImageProxy rewrites image URLs before they are embedded.
type ImageProxy interface {
	Build(rawURL string) string
}

// GoldmarkOptions configures a GoldmarkConverter.
type GoldmarkOptions struct {
	Proxy   ImageProxy // nil = image URLs used as written
	RawHTML bool       // pass raw HTML in the Markdown through unchanged
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
// A single instance is safe for concurrent use.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with autolinking,
// fenced code highlighting and the image/code-span hooks.
func NewGoldmarkConverter(opts GoldmarkOptions) *GoldmarkConverter {
	var rendererOpts []renderer.Option
	if opts.RawHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,       // Bare URLs become links
			extension.Table,         // GFM tables
			extension.Strikethrough, // ~~text~~
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, stylesheet generated separately
				),
				highlighting.WithWrapperRenderer(wrapCodeBlock),
			),
			&inlineHooks{proxy: opts.Proxy},
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment. imageClasses is
// applied as the class attribute of every image in this call only.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content, imageClasses string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pc := parser.NewContext()
	pc.Set(imageClassesKey, imageClasses)

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// wrapCodeBlock puts every fenced block in a <div class="highlight">.
// The code filename pass relies on the block being the wrapper's first
// element child. When chroma has no lexer for the block, the wrapper is
// responsible for the <pre><code> pair as well.
func wrapCodeBlock(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="highlight">`)
		if !c.Highlighted() {
			_, _ = w.WriteString("<pre><code")
			if lang, ok := c.Language(); ok && len(lang) > 0 {
				_, _ = w.WriteString(` class="language-`)
				_, _ = w.Write(util.EscapeHTML(lang))
				_ = w.WriteByte('"')
			}
			_ = w.WriteByte('>')
		}
		return
	}

	if !c.Highlighted() {
		_, _ = w.WriteString("</code></pre>")
	}
	_, _ = w.WriteString("</div>\n")
}
