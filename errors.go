package portfolio

import "github.com/alnah/go-portfolio/internal/pipeline"

// Sentinel errors for rendering. They are the pipeline's own values, so
// errors.Is matches errors from either package.
var (
	ErrInvalidMarkdown = pipeline.ErrInvalidMarkdown
	ErrHTMLConversion  = pipeline.ErrHTMLConversion
)
