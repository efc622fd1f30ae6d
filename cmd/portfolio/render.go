package main

import (
	"context"
	"fmt"
	"io"
	"os"

	portfolio "github.com/alnah/go-portfolio"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/content"
	"github.com/alnah/go-portfolio/internal/fileutil"
	"github.com/alnah/go-portfolio/internal/hints"
	"github.com/alnah/go-portfolio/internal/pipeline"
)

// runRender renders one markdown file, or stdin for "-", to an HTML
// fragment. Front matter is skipped. Highlight settings default to the
// config file's.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: render takes exactly one file or -", ErrUsage)
	}
	applyLogLevel(flags.common)

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	theme := cfg.Highlight.Style
	if flags.theme != "" {
		theme = flags.theme
	}
	if _, ok := pipeline.ResolveTheme(theme); !ok {
		env.Logger("render").Warnf("unknown theme %q, using %s%s", theme, portfolio.DefaultTheme, hints.ForThemeNotFound(theme))
	}

	src, err := readInput(positional[0], env.Stdin)
	if err != nil {
		return err
	}

	_, body, err := content.ParseFrontMatter(src)
	if err != nil {
		return annotate(fmt.Errorf("%s: %w", positional[0], err), cfg)
	}

	renderer := portfolio.NewRenderer(renderOptions(flags, cfg, theme)...)
	html, err := renderer.Render(ctx, body)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", positional[0], err)
	}

	if flags.output == "" {
		_, err := io.WriteString(env.Stdout, html)
		return err
	}
	if err := fileutil.WriteFileAtomic(flags.output, []byte(html)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, flags.output, err)
	}
	return nil
}

// renderOptions resolves highlight and link settings. Flags given on the
// command line win over cfg.
func renderOptions(f *renderFlags, cfg *config.Config, theme string) []portfolio.Option {
	classes := cfg.Highlight.Classes
	lineNumbers := cfg.Highlight.LineNumbers
	plainLinks := cfg.Build.PlainLinks
	if f.changed.has("classes") {
		classes = f.classes
	}
	if f.changed.has("line-numbers") {
		lineNumbers = f.lineNumbers
	}
	if f.changed.has("plain-links") {
		plainLinks = f.plainLinks
	}
	return []portfolio.Option{
		portfolio.WithTheme(theme),
		portfolio.WithClasses(classes),
		portfolio.WithLineNumbers(lineNumbers),
		portfolio.WithExternalLinks(!plainLinks),
	}
}

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}
