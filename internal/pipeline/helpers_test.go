package pipeline

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/net/html"

	"github.com/alnah/go-mdpage/internal/dom"
)

// runPass parses input, applies fn and renders the tree back.
func runPass(t *testing.T, input string, fn func(root *html.Node)) string {
	t.Helper()

	root, err := dom.Parse(input)
	if err != nil {
		t.Fatalf("dom.Parse() error = %v", err)
	}
	fn(root)
	out, err := dom.Render(root)
	if err != nil {
		t.Fatalf("dom.Render() error = %v", err)
	}
	return out
}

// assertHTML fails with a unified diff when got differs from want.
func assertHTML(t *testing.T, got, want string) {
	t.Helper()

	if got == want {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("diffing HTML: %v", err)
	}
	t.Errorf("HTML mismatch:\n%s\ngot:  %q\nwant: %q", diff, got, want)
}

// quietPostprocessor returns a Postprocessor that discards logs.
func quietPostprocessor() *Postprocessor {
	return NewPostprocessor(nil)
}
