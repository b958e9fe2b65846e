package mdpage

import (
	"github.com/alnah/go-mdpage/internal/camo"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrFragmentParse  = pipeline.ErrFragmentParse

	// Option validation errors.
	ErrStyleNotFound    = pipeline.ErrStyleNotFound
	ErrInvalidProxyHost = camo.ErrInvalidHost
	ErrMissingProxyKey  = camo.ErrMissingKey
)
