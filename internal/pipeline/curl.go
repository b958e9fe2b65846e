package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdpage/internal/dom"
)

// uriTemplatePattern matches {placeholders} in URL templates, including
// ones the highlighter split across lines or spans.
var uriTemplatePattern = regexp.MustCompile(`(?s)\{.*?\}`)

// fixCurlHighlighting marks URL template placeholders in curl commands with
// the operator class, which the shell lexer doesn't do on its own. The
// patch is applied to the already highlighted markup of each <code>
// element whose text starts with "curl ".
func (p *Postprocessor) fixCurlHighlighting(root *html.Node) {
	for _, code := range dom.Descendants(root, atom.Code) {
		if code.Parent == nil || !strings.HasPrefix(dom.Text(code), "curl ") {
			continue
		}

		patched := uriTemplatePattern.ReplaceAllStringFunc(dom.OuterHTML(code), func(tmpl string) string {
			return `<span class="o">` + tmpl + `</span>`
		})
		if err := dom.ReplaceWithHTML(code, patched); err != nil {
			p.logger.Warn("curl highlighting not fixed", "error", err)
		}
	}
}
