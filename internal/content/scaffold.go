package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/alnah/go-portfolio/internal/dateutil"
	"github.com/alnah/go-portfolio/internal/fileutil"
	"github.com/alnah/go-portfolio/internal/yamlutil"
)

// scaffold is the front matter written by NewPost. Field order is kept.
type scaffold struct {
	Title     string   `yaml:"title"`
	Excerpt   string   `yaml:"excerpt"`
	Date      string   `yaml:"date"`
	Published bool     `yaml:"published"`
	Tags      []string `yaml:"tags"`
}

// NewPost writes an unpublished post skeleton to dir/<slug>.md and returns
// its path. date accepts "auto" syntax (see dateutil.ResolveDate) or a
// literal ISO date; now resolves "auto".
func NewPost(dir, title, date string, now time.Time) (string, error) {
	title = strings.TrimSpace(title)
	slug := Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("%w: title %q has no usable characters", ErrFrontMatter, title)
	}

	resolved, err := dateutil.ResolveDate(date, now)
	if err != nil {
		return "", err
	}
	if _, err := dateutil.ParseISO(resolved); err != nil {
		return "", fmt.Errorf("%w: date must be ISO 8601, got %q", ErrFrontMatter, resolved)
	}

	fm, err := yamlutil.Marshal(scaffold{
		Title: title,
		Date:  resolved,
		Tags:  []string{},
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, fileutil.DirPermissions); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, slug+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileutil.FilePermissions) // #nosec G304 -- path built from slug
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrPostExists, path)
		}
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	b.WriteString("---\n\n# ")
	b.WriteString(title)
	b.WriteString("\n")

	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// Slugify lowercases title and joins its letters and digits with dashes.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
