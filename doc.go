// Package portfolio renders Markdown blog posts to HTML fragments with
// syntax-highlighted code blocks.
//
// # Quick Start
//
// Create a renderer once and reuse it; it is safe for concurrent use:
//
//	r := portfolio.NewRenderer()
//	html, err := r.Render(ctx, "# Hello\n\n```go\nfunc main() {}\n```")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or use the package-level shortcut with default options:
//
//	html, err := portfolio.MarkdownToHTML(ctx, markdown)
//
// # Rendering Pipeline
//
// Every render runs the same stages in order:
//
//  1. Line ending normalization
//  2. Parsing via Goldmark (CommonMark plus GFM tables, strikethrough,
//     autolinks and task lists; headings get IDs)
//  3. Tree transforms (external links open in a new tab)
//  4. HTML rendering, with fenced code highlighted by Chroma
//
// Raw HTML in the source is not passed through.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r := portfolio.NewRenderer(
//	    portfolio.WithTheme("dracula"),
//	    portfolio.WithClasses(true),
//	    portfolio.WithLineNumbers(true),
//	)
//
// With WithClasses, code is marked up with CSS classes instead of inline
// styles and the theme stylesheet must be shipped separately (the CLI's
// css command writes it).
//
// An unknown theme falls back to catppuccin-macchiato; a fence with an
// unknown or missing language is rendered as plain preformatted text.
//
// # Errors
//
// Input that is not valid UTF-8 fails with ErrInvalidMarkdown. Internal
// failures are reported as ErrHTMLConversion. Cancelling the context
// returns ctx.Err(). No partial output is ever returned.
//
// # Site Generation
//
// The cmd/portfolio command builds a complete static site (landing page,
// post pages, stylesheet) from a content directory and serves it with
// live reload during development. See its help output for details.
package portfolio
