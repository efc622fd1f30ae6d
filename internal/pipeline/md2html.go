package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Sentinel errors for HTML conversion.
var (
	// ErrHTMLConversion indicates a pipeline stage failed.
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrInvalidMarkdown indicates the input is not valid UTF-8 text.
	ErrInvalidMarkdown = errors.New("markdown is not valid UTF-8 text")
)

// DefaultTheme is the chroma style applied to every fenced code block.
const DefaultTheme = "catppuccin-macchiato"

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// TreeTransform rewrites a parsed document in place before it is rendered.
type TreeTransform func(doc ast.Node, source []byte) error

// HighlightOptions configures syntax highlighting of fenced code blocks.
type HighlightOptions struct {
	Theme       string // chroma style name (default: DefaultTheme)
	Classes     bool   // emit CSS classes instead of inline styles
	LineNumbers bool
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark (pure Go).
type GoldmarkConverter struct {
	md         goldmark.Markdown
	transforms []TreeTransform
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax
// highlighting. Transforms run in the given order on every parsed document.
func NewGoldmarkConverter(opts HighlightOptions, transforms ...TreeTransform) *GoldmarkConverter {
	style, _ := ResolveTheme(opts.Theme)

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithCustomStyle(style),
				highlighting.WithGuessLanguage(false), // unknown language stays plain
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(opts.Classes),
					chromahtml.WithLineNumbers(opts.LineNumbers),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings (required for TOC)
		),
		// Note: html.WithUnsafe() intentionally NOT used. Raw HTML is omitted.
	)
	return &GoldmarkConverter{md: md, transforms: transforms}
}

// ResolveTheme returns the chroma style registered under name.
// Unknown names (and "") resolve to the default theme when it exists, then to
// chroma's fallback style; ok reports whether name itself was found.
func ResolveTheme(name string) (style *chroma.Style, ok bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, found := styles.Registry[key]; found && key != "" {
		return s, true
	}
	if s, found := styles.Registry[DefaultTheme]; found {
		return s, false
	}
	return styles.Fallback, false
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !utf8.ValidString(content) {
		return "", ErrInvalidMarkdown
	}

	if content == "" {
		return "", nil
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		html, err := c.convert([]byte(content))
		done <- result{html: html, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// convert runs parse, tree transforms and render in order.
// A panic in any stage is reported as ErrHTMLConversion.
func (c *GoldmarkConverter) convert(source []byte) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			html = ""
			err = fmt.Errorf("%w: internal error: %v", ErrHTMLConversion, r)
		}
	}()

	doc := c.md.Parser().Parse(text.NewReader(source))

	for _, transform := range c.transforms {
		if err := transform(doc, source); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
	}

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, source, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// WriteThemeCSS writes the stylesheet for class-based highlighting with the
// given theme. Only needed when HighlightOptions.Classes is set.
func WriteThemeCSS(buf *bytes.Buffer, theme string) error {
	style, _ := ResolveTheme(theme)
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(buf, style); err != nil {
		return fmt.Errorf("writing %s theme CSS: %w", style.Name, err)
	}
	return nil
}
