package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Inline code is styled with utility classes rather than relying on the
// page stylesheet for <code>.
const codeSpanOpen = `<code class="dark-gray border border-gray rounded" style="padding: .1em .25em; font-size: 85%">`

// imageClassesKey carries the per-call image classes from ToHTML to the
// image class transformer.
var imageClassesKey = parser.NewContextKey()

// imageClassAttr is the AST attribute the transformer stamps on images.
var imageClassAttr = []byte("class")

// inlineHooks replaces goldmark's rendering of images and code spans.
// Everything else is left to the default HTML renderer.
type inlineHooks struct {
	proxy ImageProxy
}

// Extend implements goldmark.Extender.
func (h *inlineHooks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(util.Prioritized(imageClassTransformer{}, 100)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(h, 100)),
	)
}

// RegisterFuncs implements renderer.NodeRenderer.
func (h *inlineHooks) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, h.renderImage)
	reg.Register(ast.KindCodeSpan, h.renderCodeSpan)
}

// renderImage writes <img src alt class/>. The title is ignored and an
// empty destination produces an empty src rather than dropping the tag.
func (h *inlineHooks) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	src := ""
	if len(n.Destination) > 0 {
		src = string(n.Destination)
		if h.proxy != nil {
			src = h.proxy.Build(src)
		}
	}

	var classes []byte
	if v, ok := n.Attribute(imageClassAttr); ok {
		classes, _ = v.([]byte)
	}

	_, _ = w.WriteString(`<img src="`)
	_, _ = w.Write(util.EscapeHTML([]byte(src)))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(plainText(n, source)))
	_, _ = w.WriteString(`" class="`)
	_, _ = w.Write(util.EscapeHTML(classes))
	_, _ = w.WriteString(`"/>`)
	return ast.WalkSkipChildren, nil
}

// renderCodeSpan writes the span's literal text, escaped. A line ending
// inside the span renders as a space, as CommonMark requires.
func (h *inlineHooks) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	var code bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		var value []byte
		switch t := c.(type) {
		case *ast.Text:
			value = t.Segment.Value(source)
		case *ast.String:
			value = t.Value
		default:
			continue
		}
		if bytes.HasSuffix(value, []byte("\n")) {
			code.Write(value[:len(value)-1])
			code.WriteByte(' ')
			continue
		}
		code.Write(value)
	}

	_, _ = w.WriteString(codeSpanOpen)
	_, _ = w.Write(util.EscapeHTML(code.Bytes()))
	_, _ = w.WriteString("</code>")
	return ast.WalkSkipChildren, nil
}

// plainText flattens an inline subtree to its text, used for alt text.
func plainText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.Write(plainText(c, source))
		}
	}
	return buf.Bytes()
}

// imageClassTransformer copies the render call's image classes onto every
// image node so a shared goldmark instance can serve calls with different
// classes.
type imageClassTransformer struct{}

// Transform implements parser.ASTTransformer.
func (imageClassTransformer) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	classes, _ := pc.Get(imageClassesKey).(string)
	if classes == "" {
		return
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindImage {
			n.SetAttribute(imageClassAttr, []byte(classes))
		}
		return ast.WalkContinue, nil
	})
}
