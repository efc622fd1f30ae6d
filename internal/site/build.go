package site

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-portfolio/internal/content"
	"github.com/alnah/go-portfolio/internal/fileutil"
	"github.com/alnah/go-portfolio/internal/pipeline"
	"github.com/alnah/go-portfolio/internal/stylesheet"
	"github.com/alnah/go-portfolio/internal/view"
)

// renderedPost is one post after markdown conversion.
type renderedPost struct {
	post    *content.Post
	html    string
	summary *content.Summary
}

// Build renders the whole site into the output directory. Any post error
// fails the build; the error names the post file.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{Output: b.cfg.Output.Dir}

	views, err := b.loadViews()
	if err != nil {
		return nil, err
	}

	posts, err := b.loadPosts()
	if err != nil {
		return nil, err
	}

	selected := make([]*content.Post, 0, len(posts))
	for _, p := range posts {
		switch {
		case p.Published():
			selected = append(selected, p)
		case b.cfg.Build.Drafts:
			selected = append(selected, p)
			report.Drafts++
		default:
			report.Skipped++
			b.logger.WithField("post", p.Path).Debug("skipping unpublished post")
		}
	}

	rendered, err := b.renderPosts(ctx, selected)
	if err != nil {
		return nil, err
	}
	sortPosts(rendered)

	for _, r := range rendered {
		if err := b.writePost(views, r); err != nil {
			return nil, err
		}
	}
	report.Posts = len(rendered)

	pruned, err := b.pruneStalePosts(rendered)
	if err != nil {
		return nil, err
	}
	report.Pruned = pruned

	if err := b.writeIndex(views, rendered); err != nil {
		return nil, err
	}

	if _, err := stylesheet.Write(b.stylesheetOptions(), b.cfg.Output.Dir); err != nil {
		return nil, err
	}

	if public := b.cfg.Content.PublicDir; public != "" && fileutil.DirExists(public) {
		n, err := fileutil.CopyDir(public, b.cfg.Output.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: copying %s: %v", ErrWrite, public, err)
		}
		report.PublicFiles = n
	}

	report.Duration = time.Since(start)
	b.logger.WithFields(logrus.Fields{
		"posts":    report.Posts,
		"drafts":   report.Drafts,
		"skipped":  report.Skipped,
		"public":   report.PublicFiles,
		"pruned":   report.Pruned,
		"duration": report.Duration.Round(time.Millisecond).String(),
	}).Info("site built")
	return report, nil
}

// pruneStalePosts removes posts/<slug>/index.html for slugs this build did
// not write, so deleted or unpublished posts stop being served. Other files
// under posts/ are left alone; a slug directory is removed once empty.
// Public files are copied afterwards and win over pruning.
func (b *Builder) pruneStalePosts(rendered []*renderedPost) (int, error) {
	postsDir := filepath.Join(b.cfg.Output.Dir, "posts")
	entries, err := os.ReadDir(postsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: reading %s: %v", ErrWrite, postsDir, err)
	}

	live := make(map[string]bool, len(rendered))
	for _, r := range rendered {
		live[r.post.Slug] = true
	}

	pruned := 0
	for _, entry := range entries {
		if !entry.IsDir() || live[entry.Name()] {
			continue
		}
		dir := filepath.Join(postsDir, entry.Name())
		page := filepath.Join(dir, "index.html")
		if err := os.Remove(page); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return pruned, fmt.Errorf("%w: removing %s: %v", ErrWrite, page, err)
		}
		pruned++
		b.logger.WithField("page", page).Debug("removed stale post page")
		_ = os.Remove(dir) // fails while other files remain
	}
	return pruned, nil
}

// loadPosts reads every post. A missing content directory yields a site
// with an empty post list.
func (b *Builder) loadPosts() ([]*content.Post, error) {
	dir := b.cfg.Content.Dir
	if !fileutil.DirExists(dir) {
		b.logger.WithField("dir", dir).Warn("content directory not found, building without posts")
		return nil, nil
	}
	return content.LoadAll(dir, b.cfg.Content.Pattern)
}

// renderPosts converts posts concurrently, bounded by the worker count.
// Results keep the input order.
func (b *Builder) renderPosts(ctx context.Context, posts []*content.Post) ([]*renderedPost, error) {
	results := make([]*renderedPost, len(posts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, p := range posts {
		g.Go(func() error {
			r, err := b.renderPost(ctx, p)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrPostRender, p.Path, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *Builder) renderPost(ctx context.Context, p *content.Post) (*renderedPost, error) {
	md := b.pre.PreprocessMarkdown(ctx, p.Body)

	html, err := b.converter.ToHTML(ctx, md)
	if err != nil {
		return nil, err
	}

	html, err = pipeline.RewriteRelativeURLs(html, b.cfg.Site.BasePath)
	if err != nil {
		return nil, err
	}

	summary, err := content.Summarize(html)
	if err != nil {
		return nil, err
	}
	if p.Meta.Excerpt != "" {
		summary.Excerpt = p.Meta.Excerpt
	}

	b.logger.WithFields(logrus.Fields{"post": p.Slug, "words": summary.Words}).Debug("rendered post")
	return &renderedPost{post: p, html: html, summary: summary}, nil
}

// sortPosts orders posts newest first; equal dates fall back to slug.
func sortPosts(posts []*renderedPost) {
	slices.SortFunc(posts, func(x, y *renderedPost) int {
		if c := y.post.Date.Compare(x.post.Date); c != 0 {
			return c
		}
		return cmp.Compare(x.post.Slug, y.post.Slug)
	})
}

func (b *Builder) writePost(views *view.Views, r *renderedPost) error {
	p := r.post

	outline := make([]view.Heading, len(r.summary.Outline))
	for i, h := range r.summary.Outline {
		outline[i] = view.Heading{ID: h.ID, Text: h.Text, Level: h.Level}
	}

	body, err := views.PostPage(view.PostProps{
		Title:          p.Title,
		Date:           string(p.Meta.Date),
		DateStyle:      b.cfg.Build.DateFormat,
		CoverImage:     b.asset(p.Meta.CoverImage),
		Author:         view.Author{Name: p.Meta.Author.Name, Picture: b.asset(p.Meta.Author.Picture)},
		Tags:           p.Meta.Tags,
		ReadingMinutes: r.summary.ReadingMinutes,
		Outline:        outline,
		Body:           template.HTML(r.html), // #nosec G203 -- renderer output, raw HTML disabled
		Unpublished:    !p.Published(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPostRender, p.Path, err)
	}

	ogImage := b.cfg.Site.OGImage
	if p.Meta.OGImage.URL != "" {
		ogImage = p.Meta.OGImage.URL
	}

	page, err := views.Layout(b.layoutProps(p.Title+" | "+b.cfg.Site.Title, r.summary.Excerpt, ogImage, body))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPostRender, p.Path, err)
	}

	return b.writePage(filepath.Join("posts", p.Slug, "index.html"), page)
}

func (b *Builder) writeIndex(views *view.Views, posts []*renderedPost) error {
	author := b.cfg.Author
	headline := make([]view.HeadlineSegment, len(author.Headline))
	for i, s := range author.Headline {
		headline[i] = view.HeadlineSegment{Text: s.Text, Accent: s.Accent}
	}

	summaries := make([]view.PostSummary, len(posts))
	for i, r := range posts {
		summaries[i] = view.PostSummary{
			Title:          r.post.Title,
			URL:            b.url(r.post.URL()),
			Date:           string(r.post.Meta.Date),
			Excerpt:        r.summary.Excerpt,
			CoverImage:     b.asset(r.post.Meta.CoverImage),
			ReadingMinutes: r.summary.ReadingMinutes,
		}
	}

	body, err := views.IndexPage(view.IndexProps{
		Intro: view.IntroProps{
			Name:     author.Name,
			Headline: headline,
			Bio:      author.Bio,
			Skills:   author.Skills,
		},
		Posts:     summaries,
		DateStyle: b.cfg.Build.DateFormat,
	})
	if err != nil {
		return fmt.Errorf("%w: index: %w", ErrPageRender, err)
	}

	page, err := views.Layout(b.layoutProps(b.cfg.Site.Title, b.cfg.Site.Description, b.cfg.Site.OGImage, body))
	if err != nil {
		return fmt.Errorf("%w: index: %w", ErrPageRender, err)
	}
	return b.writePage("index.html", page)
}

func (b *Builder) layoutProps(title, description, ogImage string, body template.HTML) view.LayoutProps {
	footer := b.cfg.Site.Footer
	if footer == "" {
		footer = b.cfg.Author.Name
	}
	return view.LayoutProps{
		Lang:        b.cfg.Site.Lang,
		Title:       title,
		Description: description,
		OGImage:     b.asset(ogImage),
		Favicon:     b.asset(b.cfg.Site.Favicon),
		Stylesheet:  b.url(stylesheet.Href),
		Footer:      footer,
		Body:        body,
	}
}

// asset prefixes root-relative asset paths with the base path. URLs and
// relative paths are returned unchanged.
func (b *Builder) asset(p string) string {
	if p == "" || p[0] != '/' || (len(p) > 1 && p[1] == '/') || b.cfg.Site.BasePath == "" {
		return p
	}
	return b.url(p)
}

func (b *Builder) writePage(rel string, page template.HTML) error {
	path := filepath.Join(b.cfg.Output.Dir, rel)
	if err := fileutil.WriteFileAtomic(path, []byte(page)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, rel, err)
	}
	return nil
}

func (b *Builder) stylesheetOptions() stylesheet.Options {
	return stylesheet.Options{
		Loader:  b.resolver,
		Style:   b.cfg.Styles.Style,
		Dir:     b.cfg.Styles.Dir,
		Pattern: b.cfg.Styles.Pattern,
		Theme:   b.cfg.Highlight.Style,
		Classes: b.cfg.Highlight.Classes,
	}
}

// WriteStylesheet writes only the stylesheet bundle and returns its path.
func (b *Builder) WriteStylesheet() (string, error) {
	return stylesheet.Write(b.stylesheetOptions(), b.cfg.Output.Dir)
}
