package pipeline

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdpage/internal/dom"
)

const (
	tocSentinel        = "<p>{:toc}</p>"
	tocClass           = "Docs__toc"
	tocTitle           = "On this page:"
	headingClass       = "Docs__heading"
	headingAnchorClass = "Docs__heading__anchor"
)

// addTableOfContents styles every top-level <h2>, gives it a hidden
// permalink, and replaces each {:toc} paragraph with a list of links to
// those headings. With no headings the sentinel is simply removed.
func (p *Postprocessor) addTableOfContents(root *nethtml.Node) {
	headings := dom.Children(root, atom.H2)

	for _, h := range headings {
		dom.SetAttr(h, "class", headingClass)
		h.AppendChild(dom.NewElement(atom.A,
			nethtml.Attribute{Key: "href", Val: "#" + dom.Attr(h, "id")},
			nethtml.Attribute{Key: "aria-hidden", Val: "true"},
			nethtml.Attribute{Key: "class", Val: headingAnchorClass},
		))
	}

	var markup string
	if len(headings) > 0 {
		markup = generateTOC(headings)
	}

	for _, para := range dom.Children(root, atom.P) {
		if dom.OuterHTML(para) != tocSentinel {
			continue
		}
		// Each sentinel is parsed from the markup again, so no two
		// sentinels share nodes.
		if err := dom.ReplaceWithHTML(para, markup); err != nil {
			p.logger.Warn("table of contents not inserted", "error", err)
		}
	}
}

// generateTOC creates the navigation block for the given headings.
func generateTOC(headings []*nethtml.Node) string {
	var buf strings.Builder
	buf.WriteString(`<div class="` + tocClass + `">`)
	buf.WriteString(`<p>` + tocTitle + `</p>`)
	buf.WriteString(`<ul>`)
	for _, h := range headings {
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(dom.Attr(h, "id")))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(strings.TrimSpace(dom.Text(h))))
		buf.WriteString(`</a></li>`)
	}
	buf.WriteString(`</ul></div>`)
	return buf.String()
}
