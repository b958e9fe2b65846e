package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr returns the value of the attribute key, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// IsBlank reports whether the attribute is absent, empty or whitespace.
func IsBlank(n *html.Node, key string) bool {
	return strings.TrimSpace(Attr(n, key)) == ""
}

// SetAttr sets key to val, replacing an existing value in place so the
// attribute keeps its original position.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Remove detaches n from its parent. Detached nodes are left untouched.
func Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// RemoveBlock detaches n along with the whitespace-only text it leaves
// dangling: the text after n when only whitespace (or nothing) precedes it,
// and a whitespace-only first child before it.
func RemoveBlock(n *html.Node) {
	prev, next := n.PrevSibling, n.NextSibling
	Remove(n)
	if isSpace(next) && (prev == nil || isSpace(prev)) {
		Remove(next)
	}
	if isSpace(prev) && prev.PrevSibling == nil {
		Remove(prev)
	}
}

func isSpace(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

// Reparent moves n to the end of newParent's children.
func Reparent(n, newParent *html.Node) {
	Remove(n)
	newParent.AppendChild(n)
}

// ReplaceWithHTML parses markup in the context of n's parent and puts the
// resulting nodes where n was. Empty markup simply removes n.
func ReplaceWithHTML(n *html.Node, markup string) error {
	parent := n.Parent
	if parent == nil {
		return fmt.Errorf("dom: cannot replace detached <%s>", n.Data)
	}

	context := parent
	if parent.Type != html.ElementNode {
		context = NewElement(atom.Body)
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	for _, c := range nodes {
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
	return nil
}
