package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/alnah/go-portfolio/internal/yamlutil"
)

// FrontMatter is the metadata block at the top of a post.
type FrontMatter struct {
	Title      string   `yaml:"title" toml:"title"`
	Excerpt    string   `yaml:"excerpt" toml:"excerpt"`
	Date       Date     `yaml:"date" toml:"date"`
	CoverImage string   `yaml:"coverImage" toml:"coverImage"`
	Author     Author   `yaml:"author" toml:"author"`
	OGImage    OGImage  `yaml:"ogImage" toml:"ogImage"`
	Published  *bool    `yaml:"published" toml:"published"` // nil = published
	Tags       []string `yaml:"tags" toml:"tags"`
}

// Author identifies the writer of a post.
type Author struct {
	Name    string `yaml:"name" toml:"name"`
	Picture string `yaml:"picture" toml:"picture"`
}

// OGImage is the Open Graph image of a post.
type OGImage struct {
	URL string `yaml:"url" toml:"url"`
}

// IsPublished reports whether published is unset or true.
func (fm FrontMatter) IsPublished() bool {
	return fm.Published == nil || *fm.Published
}

// Date keeps a front matter date as written. YAML and TOML both accept
// bare dates (2024-03-01) that decoders would otherwise turn into
// time values.
type Date string

// UnmarshalYAML accepts quoted strings and bare timestamps.
func (d *Date) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*d = ""
	case string:
		*d = Date(v)
	case time.Time:
		*d = Date(formatTime(v))
	default:
		*d = Date(fmt.Sprint(v))
	}
	return nil
}

// UnmarshalText receives TOML strings and local or offset dates verbatim.
func (d *Date) UnmarshalText(text []byte) error {
	*d = Date(text)
	return nil
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// fence delimits front matter; the format follows from the fence.
type fence struct {
	marker string
	decode func([]byte, any) error
}

var fences = []fence{
	{marker: "---", decode: yamlutil.Unmarshal},
	{marker: "+++", decode: toml.Unmarshal},
}

// ParseFrontMatter splits src into front matter and body. A file without a
// fence on its first line has no front matter. Line endings are normalized
// to \n and a leading BOM is dropped.
func ParseFrontMatter(src []byte) (FrontMatter, string, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	text = strings.TrimPrefix(text, "\uFEFF")

	var fm FrontMatter
	for _, f := range fences {
		open := f.marker + "\n"
		if !strings.HasPrefix(text, open) {
			continue
		}
		rest := text[len(open):]

		block, body, found := cutFence(rest, f.marker)
		if !found {
			return fm, "", fmt.Errorf("%w: missing closing %s", ErrFrontMatter, f.marker)
		}
		if strings.TrimSpace(block) != "" {
			if err := f.decode([]byte(block), &fm); err != nil {
				return fm, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
			}
		}
		return fm, body, nil
	}
	return fm, text, nil
}

// cutFence finds the closing marker line in s.
func cutFence(s, marker string) (block, body string, found bool) {
	if strings.HasPrefix(s, marker+"\n") || s == marker {
		return "", strings.TrimPrefix(s[len(marker):], "\n"), true
	}
	idx := strings.Index(s, "\n"+marker+"\n")
	if idx == -1 {
		if strings.HasSuffix(s, "\n"+marker) {
			return s[:len(s)-len(marker)-1], "", true
		}
		return "", "", false
	}
	return s[:idx], s[idx+len(marker)+2:], true
}
