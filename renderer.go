package portfolio

import (
	"context"
	"sync"

	"github.com/alnah/go-portfolio/internal/pipeline"
)

// DefaultTheme is the chroma style used when no theme is set.
const DefaultTheme = pipeline.DefaultTheme

// Renderer converts Markdown to HTML fragments. The pipeline is fixed at
// construction; a Renderer is safe for concurrent use.
type Renderer struct {
	pre       pipeline.MarkdownPreprocessor
	converter pipeline.HTMLConverter
}

type rendererOptions struct {
	highlight     pipeline.HighlightOptions
	externalLinks bool
}

// Option configures a Renderer.
type Option func(*rendererOptions)

// WithTheme sets the chroma style for code blocks. Unknown names fall back
// to DefaultTheme.
func WithTheme(name string) Option {
	return func(o *rendererOptions) {
		o.highlight.Theme = name
	}
}

// WithClasses emits CSS classes on code tokens instead of inline styles.
func WithClasses(enabled bool) Option {
	return func(o *rendererOptions) {
		o.highlight.Classes = enabled
	}
}

// WithLineNumbers numbers the lines of every code block.
func WithLineNumbers(enabled bool) Option {
	return func(o *rendererOptions) {
		o.highlight.LineNumbers = enabled
	}
}

// WithExternalLinks controls whether links to other sites open in a new
// tab. Enabled by default.
func WithExternalLinks(enabled bool) Option {
	return func(o *rendererOptions) {
		o.externalLinks = enabled
	}
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := rendererOptions{
		highlight:     pipeline.HighlightOptions{Theme: DefaultTheme},
		externalLinks: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var transforms []pipeline.TreeTransform
	if o.externalLinks {
		transforms = append(transforms, pipeline.ExternalLinks)
	}

	return &Renderer{
		pre:       &pipeline.CommonMarkPreprocessor{},
		converter: pipeline.NewGoldmarkConverter(o.highlight, transforms...),
	}
}

// Render converts markdown to an HTML fragment. Empty input yields "".
// Returns ErrInvalidMarkdown for input that is not valid UTF-8,
// ErrHTMLConversion when a stage fails, and ctx.Err() on cancellation.
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.converter.ToHTML(ctx, r.pre.PreprocessMarkdown(ctx, markdown))
}

var defaultRenderer = sync.OnceValue(func() *Renderer {
	return NewRenderer()
})

// MarkdownToHTML renders markdown with the default options.
func MarkdownToHTML(ctx context.Context, markdown string) (string, error) {
	return defaultRenderer().Render(ctx, markdown)
}
