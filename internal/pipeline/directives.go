package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdpage/internal/dom"
)

// directive describes a paragraph of the form {: key="value"} that is
// folded into the element before it and then removed.
type directive struct {
	key    string
	prefix string         // matched against the paragraph's serialized form
	value  *regexp.Regexp // first group captures the value from its text
	apply  func(target *html.Node, value string) bool
}

var (
	idDirective = directive{
		key:    "id",
		prefix: "<p>{: id=",
		value:  regexp.MustCompile(`id="([^"]*)"`),
		apply:  setAttrTo("id"),
	}

	classDirective = directive{
		key:    "class",
		prefix: "<p>{: class=",
		value:  regexp.MustCompile(`class="([^"]*)"`),
		apply:  setAttrTo("class"),
	}

	codeFileDirective = directive{
		key:    "codeblock-file",
		prefix: "<p>{: codeblock-file=",
		value:  regexp.MustCompile(`codeblock-file="([^"]*)"`),
		apply:  wrapInFigure,
	}
)

func setAttrTo(key string) func(*html.Node, string) bool {
	return func(target *html.Node, value string) bool {
		dom.SetAttr(target, key, value)
		return true
	}
}

// extract returns the quoted value, or "" when the directive is malformed.
func (d directive) extract(text string) string {
	m := d.value.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// applyDirective consumes every top-level paragraph carrying d. A directive
// with nothing before it, or one its target cannot take, is dropped.
func (p *Postprocessor) applyDirective(root *html.Node, d directive) {
	for _, para := range dom.Children(root, atom.P) {
		if !strings.HasPrefix(dom.OuterHTML(para), d.prefix) {
			continue
		}

		text := dom.Text(para)
		value := d.extract(text)
		if value == "" {
			p.logger.Debug("malformed directive, using empty value", "directive", d.key, "text", text)
		}

		target := dom.PrevElement(para)
		switch {
		case target == nil:
			p.logger.Debug("directive has no preceding element, dropped", "directive", d.key, "value", value)
		case !d.apply(target, value):
			p.logger.Debug("directive target rejected, dropped", "directive", d.key, "target", target.Data, "value", value)
		}

		dom.RemoveBlock(para)
	}
}
