package assets

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// PageData fills the page template.
type PageData struct {
	Title        string
	BaseCSS      template.CSS  // Page layout rules
	HighlightCSS template.CSS  // Chroma rules for highlighted code
	Body         template.HTML // Rendered fragment
}

// Page wraps rendered fragments into a full HTML document.
// A Page is safe for concurrent use.
type Page struct {
	tmpl    *template.Template
	baseCSS template.CSS
}

// NewPage loads the named template and stylesheet from loader.
func NewPage(loader AssetLoader, name string) (*Page, error) {
	src, err := loader.LoadTemplate(name)
	if err != nil {
		return nil, err
	}
	css, err := loader.LoadStyle(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	// #nosec G203 -- embedded stylesheet
	return &Page{tmpl: tmpl, baseCSS: template.CSS(css)}, nil
}

// Render writes the document for body to w. highlightCSS is trusted.
func (p *Page) Render(w io.Writer, title string, highlightCSS string, body template.HTML) error {
	var buf bytes.Buffer
	err := p.tmpl.Execute(&buf, PageData{
		Title:        title,
		BaseCSS:      p.baseCSS,
		HighlightCSS: template.CSS(highlightCSS), // #nosec G203 -- generated by chroma
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	_, err = buf.WriteTo(w)
	return err
}
