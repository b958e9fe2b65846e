package pipeline

import (
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is used when no style name is given.
const DefaultHighlightStyle = "github"

// ErrStyleNotFound indicates an unknown chroma style name.
var ErrStyleNotFound = errors.New("highlight style not found")

// StyleSheet returns the CSS for the classes emitted by the highlighter.
func StyleSheet(name string) (string, error) {
	if name == "" {
		name = DefaultHighlightStyle
	}

	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", name, err)
	}
	return buf.String(), nil
}
