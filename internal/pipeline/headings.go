package pipeline

import (
	"unicode"

	"github.com/shurcooL/sanitized_anchor_name"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-mdpage/internal/dom"
)

// slugify lowercases letters and digits and collapses every other run of
// characters into a single hyphen, with none at either end. Accents are
// stripped first, so "Crème" becomes "creme".
func slugify(s string) string {
	return sanitized_anchor_name.Create(stripAccents(s))
}

// stripAccents decomposes s and drops combining marks. Letters without a
// decomposition (ß, ø, CJK) pass through unchanged.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// addHeadingAnchors gives every top-level <h2> without an id the slug of
// its text, and every <h3> up to the next <h2> without an id the h2's id
// followed by its own slug. Ids that are already set are never touched, so
// running it twice changes nothing.
func addHeadingAnchors(root *html.Node) {
	for _, h2 := range dom.Children(root, atom.H2) {
		if dom.IsBlank(h2, "id") {
			dom.SetAttr(h2, "id", slugify(dom.Text(h2)))
		}
		parentID := dom.Attr(h2, "id")

		for sib := h2.NextSibling; sib != nil; sib = sib.NextSibling {
			if dom.Is(sib, atom.H2) {
				break
			}
			if dom.Is(sib, atom.H3) && dom.IsBlank(sib, "id") {
				dom.SetAttr(sib, "id", parentID+"-"+slugify(dom.Text(sib)))
			}
		}
	}
}
