package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrTemplateParse indicates a page template is not valid html/template.
	ErrTemplateParse = errors.New("failed to parse page template")

	// ErrPageRender indicates executing the page template failed.
	ErrPageRender = errors.New("failed to render page")
)
