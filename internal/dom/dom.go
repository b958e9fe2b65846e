// Package dom is a small mutable HTML fragment tree built on
// golang.org/x/net/html.
//
// A fragment is parsed the way a browser parses the inside of <body>, so
// unbalanced or stray tags never cause an error. Every node keeps explicit
// parent and sibling links; the helpers here only mutate the tree through
// x/net/html's AppendChild, InsertBefore and RemoveChild, which keep those
// links consistent.
package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParse indicates the fragment could not be tokenized.
var ErrParse = errors.New("dom: fragment parse failed")

// Parse parses an HTML fragment and returns a synthetic <body> root whose
// children are the top-level nodes of the fragment.
func Parse(markup string) (*html.Node, error) {
	root := NewElement(atom.Body)
	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// Render serializes the children of root in order. The root element
// itself is not written.
func Render(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// OuterHTML returns the serialized form of n including its own tags.
func OuterHTML(n *html.Node) string {
	var buf strings.Builder
	// strings.Builder never fails; html.Render only returns writer errors.
	_ = html.Render(&buf, n)
	return buf.String()
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var buf strings.Builder
	collectText(n, &buf)
	return buf.String()
}

func collectText(n *html.Node, buf *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			buf.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, buf)
		}
	}
}

// NewElement creates a detached element node.
func NewElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// NewText creates a detached text node. Content is escaped on render.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Is reports whether n is an element with the given tag.
func Is(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}
