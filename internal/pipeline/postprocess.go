package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/alnah/go-mdpage/internal/dom"
)

// ErrFragmentParse indicates the rendered HTML could not be parsed back
// into a tree.
var ErrFragmentParse = errors.New("HTML fragment parse failed")

// HTMLPostprocessor defines the contract for the post-processing stage.
type HTMLPostprocessor interface {
	Postprocess(ctx context.Context, fragment string) (string, error)
}

// pass is one step of the chain. Passes mutate the tree in place and
// never fail.
type pass struct {
	name string
	run  func(root *html.Node)
}

// Postprocessor runs the fixed pass chain over an HTML fragment.
// It holds no per-call state and is safe for concurrent use.
type Postprocessor struct {
	logger *slog.Logger
	passes []pass
}

// NewPostprocessor creates a Postprocessor. A nil logger discards output.
func NewPostprocessor(logger *slog.Logger) *Postprocessor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Postprocessor{logger: logger}
	p.passes = []pass{
		{"custom-ids", func(root *html.Node) { p.applyDirective(root, idDirective) }},
		{"custom-classes", func(root *html.Node) { p.applyDirective(root, classDirective) }},
		{"heading-anchors", addHeadingAnchors},
		{"table-of-contents", p.addTableOfContents},
		{"curl-highlighting", p.fixCurlHighlighting},
		{"code-filenames", func(root *html.Node) { p.applyDirective(root, codeFileDirective) }},
	}
	return p
}

// Postprocess parses fragment, runs every pass in order and renders the
// result. Only parsing and rendering can fail.
func (p *Postprocessor) Postprocess(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := dom.Parse(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFragmentParse, err)
	}

	for _, ps := range p.passes {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		ps.run(root)
		p.logger.Debug("postprocess pass done", "pass", ps.name)
	}

	out, err := dom.Render(root)
	if err != nil {
		return "", fmt.Errorf("rendering fragment: %w", err)
	}
	return out, nil
}
