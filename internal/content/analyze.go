package content

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Derived metadata limits.
const (
	ExcerptLength  = 160 // runes
	WordsPerMinute = 200
)

// Heading is one entry of a post outline.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Summary is metadata derived from a rendered post body.
type Summary struct {
	Excerpt        string // first paragraph, truncated
	Words          int    // prose words, code blocks excluded
	ReadingMinutes int    // at least 1
	Outline        []Heading
}

// Summarize inspects rendered post HTML.
func Summarize(html string) (*Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	s := &Summary{}

	doc.Find("h2, h3").Each(func(_ int, h *goquery.Selection) {
		level := 2
		if goquery.NodeName(h) == "h3" {
			level = 3
		}
		id, _ := h.Attr("id")
		s.Outline = append(s.Outline, Heading{
			ID:    id,
			Text:  collapseSpace(h.Text()),
			Level: level,
		})
	})

	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := collapseSpace(p.Text())
		if text == "" {
			return true
		}
		s.Excerpt = truncate(text, ExcerptLength)
		return false
	})

	doc.Find("pre").Remove()
	s.Words = len(strings.Fields(doc.Text()))
	s.ReadingMinutes = max(1, int(math.Ceil(float64(s.Words)/WordsPerMinute)))

	return s, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most limit runes on a word boundary, adding "…".
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:limit-1])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
