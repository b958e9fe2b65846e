// Package mdpage renders Markdown documentation into HTML fragments ready
// to embed in a page.
//
// # Quick Start
//
// Create a renderer once and reuse it:
//
//	r, err := mdpage.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html, err := r.Render(ctx, mdpage.Input{
//	    Markdown:     "## Hello\n\n{:toc}\n\nWorld",
//	    ImageClasses: "rounded",
//	})
//
// The result is a template.HTML and can be dropped into an html/template
// without further escaping.
//
// # Rendering Pipeline
//
// Each call goes through the same stages:
//
//  1. Emoji shortcode expansion (:tada:)
//  2. Markdown to HTML via Goldmark, with chroma highlighting, proxied
//     images and styled inline code
//  3. Post-processing of the HTML tree, in this order: {: id="..."} and
//     {: class="..."} directives, heading anchors, {:toc} table of
//     contents, curl placeholder highlighting, {: codeblock-file="..."}
//     figures
//
// # Directives
//
// A directive is a paragraph of its own placed right after the element it
// applies to:
//
//	## Install
//	{: id="setup"}
//
//	| a | b |
//	|---|---|
//
//	{: class="table-wide"}
//
//	```ruby
//	puts "hi"
//	```
//	{: codeblock-file="app.rb"}
//
// A paragraph containing only {:toc} is replaced with links to every
// level-two heading.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := mdpage.NewRenderer(
//	    mdpage.WithImageProxy("https://camo.example.com", key),
//	    mdpage.WithHighlightStyle("monokai"),
//	    mdpage.WithLogger(slog.Default()),
//	)
//
// Highlighted code uses CSS classes. Serve the matching rules from
// Renderer.StyleSheet or the package-level StyleSheet function.
//
// # Security
//
// Text is escaped by the Markdown stage and raw HTML is dropped unless
// WithRawHTML is given. The output is not sanitized further.
package mdpage
