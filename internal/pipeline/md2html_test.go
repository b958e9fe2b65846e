package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// prefixProxy stands in for the camo builder.
type prefixProxy string

func (p prefixProxy) Build(rawURL string) string { return string(p) + rawURL }

const codeSpanClose = "</code>"

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    GoldmarkOptions
		input   string
		classes string
		want    string
	}{
		{
			name:    "image is proxied and classed",
			opts:    GoldmarkOptions{Proxy: prefixProxy("https://camo.test/")},
			input:   `![Alt *text*](https://img.example.com/a.png "Title")`,
			classes: "img-fluid",
			want:    "<p><img src=\"https://camo.test/https://img.example.com/a.png\" alt=\"Alt text\" class=\"img-fluid\"/></p>\n",
		},
		{
			name:  "image without proxy or classes",
			input: `![logo](/logo.png)`,
			want:  "<p><img src=\"/logo.png\" alt=\"logo\" class=\"\"/></p>\n",
		},
		{
			name:  "empty destination keeps the tag",
			opts:  GoldmarkOptions{Proxy: prefixProxy("https://camo.test/")},
			input: `![x]()`,
			want:  "<p><img src=\"\" alt=\"x\" class=\"\"/></p>\n",
		},
		{
			name:  "alt and src are escaped",
			input: `![a "b" & c](/x.png?a=1&b=2)`,
			want:  "<p><img src=\"/x.png?a=1&amp;b=2\" alt=\"a &quot;b&quot; &amp; c\" class=\"\"/></p>\n",
		},
		{
			name:  "code span is styled and escaped",
			input: "Use `a < b` now",
			want:  "<p>Use " + codeSpanOpen + "a &lt; b" + codeSpanClose + " now</p>\n",
		},
		{
			name:  "line ending in code span becomes a space",
			input: "`foo\nbar`",
			want:  "<p>" + codeSpanOpen + "foo bar" + codeSpanClose + "</p>\n",
		},
		{
			name:  "bare url is linked",
			input: "Visit https://example.com today",
			want:  "<p>Visit <a href=\"https://example.com\">https://example.com</a> today</p>\n",
		},
		{
			name:  "hash without space is not a heading",
			input: "#Not heading",
			want:  "<p>#Not heading</p>\n",
		},
		{
			name:  "directive paragraph passes through",
			input: "## Intro\n{: id=\"start\"}",
			want:  "<h2>Intro</h2>\n<p>{: id=&quot;start&quot;}</p>\n",
		},
		{
			name:  "unknown language keeps plain block in the wrapper",
			input: "```nosuchlang\nx < y\n```",
			want:  "<div class=\"highlight\"><pre><code class=\"language-nosuchlang\">x &lt; y\n</code></pre></div>\n",
		},
		{
			name:  "raw html omitted by default",
			input: "<div>x</div>",
			want:  "<!-- raw HTML omitted -->\n",
		},
		{
			name:  "raw html kept when enabled",
			opts:  GoldmarkOptions{RawHTML: true},
			input: "<div>x</div>",
			want:  "<div>x</div>\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewGoldmarkConverter(tt.opts).ToHTML(context.Background(), tt.input, tt.classes)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			assertHTML(t, got, tt.want)
		})
	}
}

func TestGoldmarkConverter_HighlightedBlock(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkConverter(GoldmarkOptions{}).ToHTML(context.Background(), "```go\nfmt.Println(1)\n```\n", "")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	if !strings.HasPrefix(got, `<div class="highlight"><pre`) {
		t.Errorf("block should open with the wrapper and chroma pre, got %q", got)
	}
	if !strings.Contains(got, `class="chroma"`) {
		t.Errorf("block should use chroma classes, got %q", got)
	}
	if strings.Contains(got, "style=") {
		t.Errorf("block should not carry inline styles, got %q", got)
	}
	if !strings.HasSuffix(got, "</div>\n") {
		t.Errorf("block should close the wrapper, got %q", got)
	}
}

func TestGoldmarkConverter_ClassesArePerCall(t *testing.T) {
	t.Parallel()

	c := NewGoldmarkConverter(GoldmarkOptions{})
	ctx := context.Background()

	first, err := c.ToHTML(ctx, "![a](/a.png)", "one")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	second, err := c.ToHTML(ctx, "![a](/a.png)", "")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	if !strings.Contains(first, `class="one"`) {
		t.Errorf("first call = %q, want class one", first)
	}
	if !strings.Contains(second, `class=""`) {
		t.Errorf("second call = %q, want empty class", second)
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter(GoldmarkOptions{}).ToHTML(ctx, "# x", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
