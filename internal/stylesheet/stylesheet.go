// Package stylesheet concatenates the site stylesheet: base style, user
// CSS files and, for class-based highlighting, the chroma theme rules.
package stylesheet

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-portfolio/internal/fileutil"
	"github.com/alnah/go-portfolio/internal/pipeline"
)

// OutputPath is the bundle location relative to the output directory.
const OutputPath = "assets/css/site.css"

// Href is the URL pages use to link the bundle.
const Href = "/" + OutputPath

// DefaultPattern matches every CSS file below the styles directory.
const DefaultPattern = "**/*.css"

// ErrStylesheet indicates the bundle could not be assembled.
var ErrStylesheet = errors.New("stylesheet bundle failed")

// StyleLoader provides base styles by name.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// Options selects the parts of the bundle.
type Options struct {
	Loader  StyleLoader
	Style   string // base style name, empty = none
	Dir     string // user CSS directory, empty = none
	Pattern string // doublestar glob under Dir
	Theme   string // chroma style for class-based highlighting
	Classes bool   // append theme CSS
}

// Bundle assembles the stylesheet. Each part is preceded by a comment
// naming its source.
func Bundle(opts Options) (string, error) {
	var buf bytes.Buffer

	if opts.Style != "" {
		if opts.Loader == nil {
			return "", fmt.Errorf("%w: no loader for style %q", ErrStylesheet, opts.Style)
		}
		css, err := opts.Loader.LoadStyle(opts.Style)
		if err != nil {
			return "", err
		}
		writePart(&buf, "style: "+opts.Style, css)
	}

	files, err := UserFiles(opts.Dir, opts.Pattern)
	if err != nil {
		return "", err
	}
	for _, file := range files {
		css, err := os.ReadFile(file) // #nosec G304 -- discovered under styles dir
		if err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrStylesheet, file, err)
		}
		rel, relErr := filepath.Rel(opts.Dir, file)
		if relErr != nil {
			rel = file
		}
		writePart(&buf, filepath.ToSlash(rel), string(css))
	}

	if opts.Classes {
		var theme bytes.Buffer
		if err := pipeline.WriteThemeCSS(&theme, opts.Theme); err != nil {
			return "", fmt.Errorf("%w: %v", ErrStylesheet, err)
		}
		writePart(&buf, "highlight: "+opts.Theme, theme.String())
	}

	return buf.String(), nil
}

// UserFiles lists the CSS files under dir matching pattern, sorted.
// An empty dir yields no files; a missing dir is an error.
func UserFiles(dir, pattern string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: invalid pattern %q", ErrStylesheet, pattern)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: styles directory %s unavailable", ErrStylesheet, dir)
	}

	var files []string
	err := doublestar.GlobWalk(os.DirFS(dir), pattern, func(p string, d fs.DirEntry) error {
		if !d.IsDir() {
			files = append(files, filepath.Join(dir, filepath.FromSlash(p)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesheet, err)
	}
	slices.Sort(files)
	return files, nil
}

// Write bundles opts into outDir/OutputPath and returns the written path.
func Write(opts Options, outDir string) (string, error) {
	css, err := Bundle(opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, filepath.FromSlash(OutputPath))
	if err := fileutil.WriteFileAtomic(path, []byte(css)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStylesheet, err)
	}
	return path, nil
}

func writePart(buf *bytes.Buffer, source, css string) {
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	fmt.Fprintf(buf, "/* %s */\n", sanitizeComment(source))
	buf.WriteString(css)
	if len(css) > 0 && css[len(css)-1] != '\n' {
		buf.WriteByte('\n')
	}
}

// sanitizeComment keeps a source name from closing its comment.
func sanitizeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
