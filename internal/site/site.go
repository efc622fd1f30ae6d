// Package site builds the static portfolio: landing page, post pages,
// stylesheet and public files.
package site

import (
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/logging"
	"github.com/alnah/go-portfolio/internal/pipeline"
	"github.com/alnah/go-portfolio/internal/view"
)

// Sentinel errors for site builds.
var (
	// ErrPostRender indicates a post failed to render.
	ErrPostRender = errors.New("post render failed")

	// ErrPageRender indicates the landing page or layout failed to render.
	ErrPageRender = errors.New("page render failed")

	// ErrWrite indicates an output file could not be written.
	ErrWrite = errors.New("failed to write output")
)

// Report summarizes one build.
type Report struct {
	Output      string        // output directory
	Posts       int           // post pages written
	Drafts      int           // unpublished posts written with a banner
	Skipped     int           // unpublished posts left out
	PublicFiles int           // files copied from the public directory
	Pruned      int           // stale post pages removed from the output
	Duration    time.Duration // wall time of the build
}

func (r *Report) String() string {
	return fmt.Sprintf("%d posts (%d drafts, %d skipped), %d public files in %s",
		r.Posts, r.Drafts, r.Skipped, r.PublicFiles, r.Duration.Round(time.Millisecond))
}

// Builder renders a site from a configuration. A Builder is safe for
// sequential Build calls; Watch serializes them.
type Builder struct {
	cfg       *config.Config
	resolver  *assets.AssetResolver
	converter pipeline.HTMLConverter
	pre       pipeline.MarkdownPreprocessor
	logger    *logrus.Entry
	workers   int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. Defaults to the "site" component logger.
func WithLogger(logger *logrus.Entry) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithConverter replaces the markdown converter.
func WithConverter(c pipeline.HTMLConverter) Option {
	return func(b *Builder) {
		b.converter = c
	}
}

// New validates cfg and prepares a Builder. The template set is loaded
// once here to fail early; every build reloads it so edits are picked up.
func New(cfg *config.Config, opts ...Option) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	var transforms []pipeline.TreeTransform
	if !cfg.Build.PlainLinks {
		transforms = append(transforms, pipeline.ExternalLinks)
	}

	b := &Builder{
		cfg:      cfg,
		resolver: resolver,
		converter: pipeline.NewGoldmarkConverter(pipeline.HighlightOptions{
			Theme:       cfg.Highlight.Style,
			Classes:     cfg.Highlight.Classes,
			LineNumbers: cfg.Highlight.LineNumbers,
		}, transforms...),
		pre:     &pipeline.CommonMarkPreprocessor{},
		workers: ResolveWorkers(cfg.Build.Workers),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logging.NewLogger("site")
	}

	if _, err := b.loadViews(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Builder) loadViews() (*view.Views, error) {
	ts, err := b.resolver.LoadTemplateSet(assets.DefaultTemplateSetName)
	if err != nil {
		return nil, err
	}
	return view.New(ts)
}

// Workers returns the number of concurrent post renders.
func (b *Builder) Workers() int {
	return b.workers
}

// ResolveWorkers returns the render concurrency for a configured value.
// Zero means auto: half of GOMAXPROCS, between 1 and config.MaxWorkers.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return min(workers, config.MaxWorkers)
	}
	return max(1, min(runtime.GOMAXPROCS(0)/2, config.MaxWorkers))
}

// url joins p to the configured base path. A trailing slash on p is kept.
func (b *Builder) url(p string) string {
	joined := path.Join("/", b.cfg.Site.BasePath, p)
	if strings.HasSuffix(p, "/") && joined != "/" {
		joined += "/"
	}
	return joined
}
