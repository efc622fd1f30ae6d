// Package content loads blog posts from markdown files with front matter.
package content

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for content operations.
var (
	// ErrFrontMatter indicates front matter that cannot be decoded.
	ErrFrontMatter = errors.New("invalid front matter")

	// ErrContentDir indicates the content directory cannot be read.
	ErrContentDir = errors.New("content directory unavailable")

	// ErrInvalidPattern indicates a malformed discovery glob.
	ErrInvalidPattern = errors.New("invalid content pattern")

	// ErrDuplicateSlug indicates two files map to the same post URL.
	ErrDuplicateSlug = errors.New("duplicate post slug")

	// ErrPostExists indicates the scaffolded post file already exists.
	ErrPostExists = errors.New("post already exists")
)

// Post is one markdown file with its decoded front matter.
type Post struct {
	Slug  string
	Path  string
	Meta  FrontMatter
	Date  time.Time // parsed Meta.Date, zero when absent
	Title string    // Meta.Title, first "# " heading, or slug
	Body  string    // markdown after the front matter
}

// Published reports whether the post should appear in a normal build.
func (p *Post) Published() bool {
	return p.Meta.IsPublished()
}

// URL returns the post path relative to the site root.
func (p *Post) URL() string {
	return "/posts/" + p.Slug + "/"
}

func (p *Post) String() string {
	return fmt.Sprintf("%s (%s)", p.Slug, p.Path)
}
