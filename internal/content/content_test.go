package content

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

// Notes:
// - Post files are written under t.TempDir(); Summarize is fed HTML shaped
//   like the markdown renderer's output.

func writePost(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestParseFrontMatter - YAML and TOML fences
// ---------------------------------------------------------------------------

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		wantTitle string
		wantDate  Date
		wantBody  string
		wantPub   bool
		wantErr   error
	}{
		{
			name:     "no front matter",
			src:      "# Hello\n",
			wantBody: "# Hello\n",
			wantPub:  true,
		},
		{
			name:      "YAML quoted date",
			src:       "---\ntitle: Hello\ndate: \"2020-03-16T05:35:07.322Z\"\n---\nBody\n",
			wantTitle: "Hello",
			wantDate:  "2020-03-16T05:35:07.322Z",
			wantBody:  "Body\n",
			wantPub:   true,
		},
		{
			name:      "YAML bare date and draft",
			src:       "---\ntitle: Draft\ndate: 2024-03-01\npublished: false\n---\n",
			wantTitle: "Draft",
			wantDate:  "2024-03-01",
			wantPub:   false,
		},
		{
			name:      "CRLF line endings",
			src:       "---\r\ntitle: Windows\r\n---\r\nBody\r\n",
			wantTitle: "Windows",
			wantBody:  "Body\n",
			wantPub:   true,
		},
		{
			name:      "TOML with local date",
			src:       "+++\ntitle = \"Toml\"\ndate = 2024-03-01\ntags = [\"go\"]\n+++\nBody\n",
			wantTitle: "Toml",
			wantDate:  "2024-03-01",
			wantBody:  "Body\n",
			wantPub:   true,
		},
		{
			name:     "empty block",
			src:      "---\n---\nBody\n",
			wantBody: "Body\n",
			wantPub:  true,
		},
		{
			name:    "unclosed fence",
			src:     "---\ntitle: Hello\nBody\n",
			wantErr: ErrFrontMatter,
		},
		{
			name:    "invalid YAML",
			src:     "---\ntitle: [oops\n---\n",
			wantErr: ErrFrontMatter,
		},
		{
			name:    "invalid TOML",
			src:     "+++\ntitle = \n+++\n",
			wantErr: ErrFrontMatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, err := ParseFrontMatter([]byte(tt.src))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fm.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", fm.Title, tt.wantTitle)
			}
			if fm.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", fm.Date, tt.wantDate)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if fm.IsPublished() != tt.wantPub {
				t.Errorf("IsPublished() = %v, want %v", fm.IsPublished(), tt.wantPub)
			}
		})
	}
}

func TestParseFrontMatter_AllFields(t *testing.T) {
	t.Parallel()

	src := `---
title: "Dynamic Routing and Static Generation"
excerpt: "Lorem ipsum"
coverImage: "/assets/blog/dynamic-routing/cover.jpg"
date: "2020-03-16T05:35:07.322Z"
author:
  name: JJ Kasper
  picture: "/assets/blog/authors/jj.jpeg"
ogImage:
  url: "/assets/blog/dynamic-routing/cover.jpg"
tags: [nextjs, routing]
extra: ignored
---
`
	fm, _, err := ParseFrontMatter([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm.Author.Name != "JJ Kasper" || fm.Author.Picture != "/assets/blog/authors/jj.jpeg" {
		t.Errorf("Author = %+v", fm.Author)
	}
	if fm.OGImage.URL != "/assets/blog/dynamic-routing/cover.jpg" {
		t.Errorf("OGImage = %+v", fm.OGImage)
	}
	if fm.CoverImage == "" || fm.Excerpt != "Lorem ipsum" {
		t.Errorf("CoverImage = %q, Excerpt = %q", fm.CoverImage, fm.Excerpt)
	}
	if !slices.Equal(fm.Tags, []string{"nextjs", "routing"}) {
		t.Errorf("Tags = %v", fm.Tags)
	}
}

// ---------------------------------------------------------------------------
// TestParse - titles, slugs and dates
// ---------------------------------------------------------------------------

func TestParse_TitleFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		src  string
		want string
	}{
		{name: "front matter title", file: "a.md", src: "---\ntitle: Front\n---\n# Heading\n", want: "Front"},
		{name: "first heading", file: "a.md", src: "Intro\n\n# Heading\n", want: "Heading"},
		{name: "heading inside fence ignored", file: "my-post.md", src: "```\n# not a title\n```\n", want: "my-post"},
		{name: "slug", file: "dir/hello-world.md", src: "Just text\n", want: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			post, err := Parse(tt.file, []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if post.Title != tt.want {
				t.Errorf("Title = %q, want %q", post.Title, tt.want)
			}
		})
	}
}

func TestParse_Date(t *testing.T) {
	t.Parallel()

	post, err := Parse("p.md", []byte("---\ndate: 2024-03-01\n---\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !post.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", post.Date)
	}
	if post.URL() != "/posts/p/" {
		t.Errorf("URL() = %q", post.URL())
	}

	_, err = Parse("bad.md", []byte("---\ndate: yesterday\n---\n"))
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("Parse(bad date) error = %v, want ErrFrontMatter", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bad.md") {
		t.Errorf("error %q should name the file", err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscover and LoadAll
// ---------------------------------------------------------------------------

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePost(t, dir, "b.md", "")
	writePost(t, dir, "a.md", "")
	writePost(t, dir, "2024/c.md", "")
	writePost(t, dir, ".hidden.md", "")
	writePost(t, dir, "notes.txt", "")

	got, err := Discover(dir, "")
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "2024", "c.md"),
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}

	top, err := Discover(dir, "*.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Errorf("Discover(*.md) = %v, want 2 top-level files", top)
	}
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Discover(filepath.Join(t.TempDir(), "missing"), ""); !errors.Is(err, ErrContentDir) {
		t.Errorf("missing dir error = %v, want ErrContentDir", err)
	}
	if _, err := Discover(t.TempDir(), "[unclosed"); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("bad pattern error = %v, want ErrInvalidPattern", err)
	}
}

func TestLoadAll_DuplicateSlug(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePost(t, dir, "2023/hello.md", "# One\n")
	writePost(t, dir, "2024/hello.md", "# Two\n")

	if _, err := LoadAll(dir, ""); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("LoadAll() error = %v, want ErrDuplicateSlug", err)
	}
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePost(t, dir, "one.md", "---\ntitle: One\n---\nBody\n")
	writePost(t, dir, "two.md", "+++\ntitle = \"Two\"\npublished = false\n+++\nBody\n")

	posts, err := LoadAll(dir, "")
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].Title != "One" || !posts[0].Published() {
		t.Errorf("posts[0] = %+v", posts[0])
	}
	if posts[1].Title != "Two" || posts[1].Published() {
		t.Errorf("posts[1] = %+v", posts[1])
	}
}

// ---------------------------------------------------------------------------
// TestSummarize - goquery-derived metadata
// ---------------------------------------------------------------------------

func TestSummarize(t *testing.T) {
	t.Parallel()

	html := `<h1 id="title">Title</h1>
<p></p>
<p>First   paragraph
with a break.</p>
<h2 id="setup">Setup</h2>
<pre><code>one two three four five</code></pre>
<h3 id="deps">Deps <code>go.mod</code></h3>
<p>Second paragraph.</p>`

	s, err := Summarize(html)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if s.Excerpt != "First paragraph with a break." {
		t.Errorf("Excerpt = %q", s.Excerpt)
	}
	wantOutline := []Heading{
		{ID: "setup", Text: "Setup", Level: 2},
		{ID: "deps", Text: "Deps go.mod", Level: 3},
	}
	if !slices.Equal(s.Outline, wantOutline) {
		t.Errorf("Outline = %+v, want %+v", s.Outline, wantOutline)
	}
	// Title, First paragraph with a break., Setup, Deps go.mod, Second paragraph.
	if s.Words != 11 {
		t.Errorf("Words = %d, want 11 (code excluded)", s.Words)
	}
	if s.ReadingMinutes != 1 {
		t.Errorf("ReadingMinutes = %d, want 1", s.ReadingMinutes)
	}
}

func TestSummarize_ReadingTime(t *testing.T) {
	t.Parallel()

	html := "<p>" + strings.Repeat("word ", 401) + "</p>"
	s, err := Summarize(html)
	if err != nil {
		t.Fatal(err)
	}
	if s.ReadingMinutes != 3 {
		t.Errorf("ReadingMinutes = %d, want 3 for 401 words", s.ReadingMinutes)
	}

	empty, err := Summarize("")
	if err != nil {
		t.Fatal(err)
	}
	if empty.ReadingMinutes != 1 || empty.Excerpt != "" {
		t.Errorf("empty summary = %+v", empty)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short", in: "short text", limit: 20, want: "short text"},
		{name: "word boundary", in: "the quick brown fox jumps", limit: 12, want: "the quick…"},
		{name: "trailing punctuation", in: "hello, world again", limit: 9, want: "hello…"},
		{name: "multibyte", in: "ééééé ééééé", limit: 8, want: "ééééé…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewPost - scaffolding
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Hello, World!":         "hello-world",
		"  Dynamic   Routing  ": "dynamic-routing",
		"Go 1.25 release notes": "go-1-25-release-notes",
		"Café au lait":          "café-au-lait",
		"!!!":                   "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewPost(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "posts")
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	path, err := NewPost(dir, "Hello World", "auto", now)
	if err != nil {
		t.Fatalf("NewPost() error: %v", err)
	}
	if path != filepath.Join(dir, "hello-world.md") {
		t.Errorf("path = %q", path)
	}

	post, err := Load(path)
	if err != nil {
		t.Fatalf("Load(scaffold) error: %v", err)
	}
	if post.Title != "Hello World" {
		t.Errorf("Title = %q", post.Title)
	}
	if post.Meta.Date != "2024-03-15" {
		t.Errorf("Date = %q, want 2024-03-15", post.Meta.Date)
	}
	if post.Published() {
		t.Error("scaffolded post should be unpublished")
	}
	if !strings.Contains(post.Body, "# Hello World") {
		t.Errorf("Body = %q", post.Body)
	}

	if _, err := NewPost(dir, "Hello World", "auto", now); !errors.Is(err, ErrPostExists) {
		t.Errorf("second NewPost() error = %v, want ErrPostExists", err)
	}
}

func TestNewPost_InvalidInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()

	if _, err := NewPost(dir, "???", "auto", now); !errors.Is(err, ErrFrontMatter) {
		t.Errorf("empty slug error = %v, want ErrFrontMatter", err)
	}
	if _, err := NewPost(dir, "Title", "auto:DD/MM/YYYY", now); !errors.Is(err, ErrFrontMatter) {
		t.Errorf("non-ISO date error = %v, want ErrFrontMatter", err)
	}
}
