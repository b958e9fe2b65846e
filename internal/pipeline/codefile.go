package pipeline

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdpage/internal/dom"
)

const figureClass = "highlight-figure"

// wrapInFigure moves the first element of a highlight wrapper into a
// captioned <figure> appended to the same wrapper:
//
//	<div class="highlight"><figure class="highlight-figure">
//	  <figcaption>app.rb</figcaption><pre>...</pre>
//	</figure></div>
//
// It reports false when the wrapper has no element to move.
func wrapInFigure(wrapper *html.Node, filename string) bool {
	code := dom.FirstElementChild(wrapper)
	if code == nil {
		return false
	}

	caption := dom.NewElement(atom.Figcaption)
	caption.AppendChild(dom.NewText(filename))

	figure := dom.NewElement(atom.Figure, html.Attribute{Key: "class", Val: figureClass})
	figure.AppendChild(caption)

	dom.Reparent(code, figure)
	wrapper.AppendChild(figure)
	return true
}
