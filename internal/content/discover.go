package content

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-portfolio/internal/dateutil"
)

// DefaultPattern matches every markdown file below the content directory.
const DefaultPattern = "**/*.md"

// Discover returns the files under dir matching pattern, sorted.
// Directories and hidden files are skipped.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, pattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrContentDir, dir)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(dir), pattern, func(p string, d fs.DirEntry) error {
		if d.IsDir() || strings.HasPrefix(path.Base(p), ".") {
			return nil
		}
		matches = append(matches, filepath.Join(dir, filepath.FromSlash(p)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentDir, err)
	}

	slices.Sort(matches)
	return matches, nil
}

// Load reads and decodes one post file.
func Load(file string) (*Post, error) {
	src, err := os.ReadFile(file) // #nosec G304 -- discovered content file
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return Parse(file, src)
}

// Parse decodes a post from src; file names the post and derives its slug.
func Parse(file string, src []byte) (*Post, error) {
	fm, body, err := ParseFrontMatter(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	post := &Post{
		Slug: SlugFromPath(file),
		Path: file,
		Meta: fm,
		Body: body,
	}

	if fm.Date != "" {
		post.Date, err = dateutil.ParseISO(string(fm.Date))
		if err != nil {
			return nil, fmt.Errorf("%s: %w: date: %v", file, ErrFrontMatter, err)
		}
	}

	post.Title = fm.Title
	if post.Title == "" {
		post.Title = firstHeading(body)
	}
	if post.Title == "" {
		post.Title = post.Slug
	}
	return post, nil
}

// LoadAll discovers and loads every post under dir. Slugs must be unique.
func LoadAll(dir, pattern string) ([]*Post, error) {
	files, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}

	posts := make([]*Post, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		post, err := Load(file)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[post.Slug]; dup {
			return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateSlug, post.Slug, prev, file)
		}
		seen[post.Slug] = file
		posts = append(posts, post)
	}
	return posts, nil
}

// SlugFromPath returns the file base name without extension.
func SlugFromPath(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// firstHeading returns the text of the first "# " line outside fenced code.
func firstHeading(body string) string {
	inFence := false
	for line := range strings.SplitSeq(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return ""
}
