// Package assets provides the HTML page template and base stylesheet used
// to wrap rendered fragments into standalone documents.
//
// Assets are embedded at compile time:
//
//	styles/
//	└── {name}.css       # Page styles (e.g., page.css)
//	templates/
//	└── {name}.html      # html/template page layouts (e.g., page.html)
//
// # Security
//
// Asset names are validated to prevent path traversal. Page data is passed
// through html/template, so only the fragment and the stylesheets, which
// are typed as trusted, bypass escaping.
package assets
