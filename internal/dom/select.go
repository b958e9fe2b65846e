package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Children returns the direct element children of n with the given tag,
// in document order. The result is a snapshot: callers may remove or
// replace the returned nodes while iterating.
func Children(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if Is(c, a) {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every element below n with the given tag, depth
// first in document order. Like Children, the result is a snapshot.
func Descendants(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if Is(c, a) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// PrevElement returns the closest preceding sibling that is an element,
// skipping text and comments, or nil.
func PrevElement(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// FirstElementChild returns the first child of n that is an element, or nil.
func FirstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}
