package view

import (
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/alnah/go-portfolio/internal/assets"
)

// Notes:
// - Components are checked through substrings of their output; whitespace
//   between elements belongs to the templates and is not asserted.

func defaultViews(t *testing.T) *Views {
	t.Helper()
	v, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	return v
}

func assertContains(t *testing.T, got template.HTML, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(string(got), want) {
			t.Errorf("output missing %q\ngot: %s", want, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestNew - template set parsing
// ---------------------------------------------------------------------------

func TestNew_IncompleteSet(t *testing.T) {
	t.Parallel()

	ts := &assets.TemplateSet{Name: "partial", Templates: map[string]string{"alert": "x"}}
	_, err := New(ts)
	if !errors.Is(err, ErrTemplate) || !errors.Is(err, assets.ErrIncompleteTemplateSet) {
		t.Errorf("New() error = %v, want ErrTemplate wrapping ErrIncompleteTemplateSet", err)
	}
}

func TestNew_ParseError(t *testing.T) {
	t.Parallel()

	ts, err := assets.DefaultTemplateSet()
	if err != nil {
		t.Fatal(err)
	}
	ts.Templates["intro"] = "{{if .Name}}unclosed"

	if _, err := New(ts); !errors.Is(err, ErrTemplate) {
		t.Errorf("New() error = %v, want ErrTemplate", err)
	}
}

// ---------------------------------------------------------------------------
// TestAlert - class selection
// ---------------------------------------------------------------------------

func TestAlertClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style AlertStyle
		want  string
	}{
		{AlertDark, "border-b border-neutral-200 py-2 text-center text-sm bg-neutral-800 border-neutral-800 text-white"},
		{AlertLight, "border-b border-neutral-200 py-2 text-center text-sm bg-neutral-50 border-neutral-200"},
		{AlertNone, "border-b border-neutral-200 py-2 text-center text-sm"},
		{AlertStyle("loud"), "border-b border-neutral-200 py-2 text-center text-sm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			t.Parallel()

			if got := alertClass(tt.style); got != tt.want {
				t.Errorf("alertClass(%q) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestViews_Alert(t *testing.T) {
	t.Parallel()

	v := defaultViews(t)

	got, err := v.Alert(AlertProps{Style: AlertLight, Body: "<strong>Preview</strong>"})
	if err != nil {
		t.Fatalf("Alert() error: %v", err)
	}
	assertContains(t, got,
		`class="border-b border-neutral-200 py-2 text-center text-sm bg-neutral-50 border-neutral-200"`,
		`<div class="py-2 text-center text-sm"><strong>Preview</strong></div>`,
	)
}

func TestViews_UnpublishedBanner(t *testing.T) {
	t.Parallel()

	got, err := defaultViews(t).UnpublishedBanner()
	if err != nil {
		t.Fatalf("UnpublishedBanner() error: %v", err)
	}
	assertContains(t, got, "bg-neutral-800 border-neutral-800 text-white", "This page is not published.")
}

// ---------------------------------------------------------------------------
// TestIntro
// ---------------------------------------------------------------------------

func TestViews_Intro(t *testing.T) {
	t.Parallel()

	got, err := defaultViews(t).Intro(IntroProps{
		Name: "Alex <3",
		Headline: []HeadlineSegment{
			{Text: "Passionate"},
			{Text: "awesome", Accent: "text-green-400"},
		},
		Bio:    "Twenty years of UI.",
		Skills: []string{"Go", "Figma"},
	})
	if err != nil {
		t.Fatalf("Intro() error: %v", err)
	}
	assertContains(t, got,
		"Hi, my name is Alex &lt;3 and I am",
		`<span class="text-5xl md:text-8xl">Passionate</span>`,
		`<span class="text-5xl md:text-8xl text-green-400">awesome</span>`,
		"Twenty years of UI.",
		`<span class="bg-slate-200 px-2 py-1 rounded">Go</span>`,
		`<span class="bg-slate-200 px-2 py-1 rounded">Figma</span>`,
	)
}

func TestViews_IntroWithoutSkills(t *testing.T) {
	t.Parallel()

	got, err := defaultViews(t).Intro(IntroProps{Name: "Sam"})
	if err != nil {
		t.Fatalf("Intro() error: %v", err)
	}
	if strings.Contains(string(got), "bg-slate-200") {
		t.Errorf("no skill chips expected: %s", got)
	}
}

// ---------------------------------------------------------------------------
// TestDate
// ---------------------------------------------------------------------------

func TestViews_Date(t *testing.T) {
	t.Parallel()

	v := defaultViews(t)

	tests := []struct {
		name  string
		props DateProps
		want  string
	}{
		{
			name:  "default style",
			props: DateProps{Date: "2024-03-01"},
			want:  `<time datetime="2024-03-01">March 1, 2024</time>`,
		},
		{
			name:  "custom style",
			props: DateProps{Date: "2020-03-16T05:35:07.322Z", Style: "dd/LL/yyyy"},
			want:  `<time datetime="2020-03-16T05:35:07.322Z">16/03/2020</time>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := v.Date(tt.props)
			if err != nil {
				t.Fatalf("Date() error: %v", err)
			}
			if strings.TrimSpace(string(got)) != tt.want {
				t.Errorf("Date() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViews_DateInvalid(t *testing.T) {
	t.Parallel()

	_, err := defaultViews(t).Date(DateProps{Date: "not a date"})
	if !errors.Is(err, ErrTemplate) {
		t.Errorf("Date() error = %v, want ErrTemplate", err)
	}
}

// ---------------------------------------------------------------------------
// TestLayout and pages
// ---------------------------------------------------------------------------

func TestViews_Layout(t *testing.T) {
	t.Parallel()

	got, err := defaultViews(t).Layout(LayoutProps{
		Lang:        "en",
		Title:       "Alex frontend developer",
		Description: "My skills and latest work.",
		OGImage:     "https://example.com/og.png",
		Favicon:     "/favicon/favicon.ico",
		Stylesheet:  "/assets/css/site.css",
		Footer:      "Alex",
		Body:        "<main>hello</main>",
	})
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	assertContains(t, got,
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Alex frontend developer</title>",
		`<meta name="description" content="My skills and latest work.">`,
		`<meta property="og:image" content="https://example.com/og.png">`,
		`<link rel="shortcut icon" href="/favicon/favicon.ico">`,
		`<link rel="stylesheet" href="/assets/css/site.css">`,
		`<div class="min-h-screen"><main>hello</main></div>`,
	)
}

func TestViews_LayoutOmitsEmptyMeta(t *testing.T) {
	t.Parallel()

	got, err := defaultViews(t).Layout(LayoutProps{Lang: "en", Title: "t"})
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	for _, unwanted := range []string{"og:image", `name="description"`, `rel="stylesheet"`} {
		if strings.Contains(string(got), unwanted) {
			t.Errorf("layout should omit %q", unwanted)
		}
	}
}

func TestViews_IndexPage(t *testing.T) {
	t.Parallel()

	got, err := defaultViews(t).IndexPage(IndexProps{
		Intro: IntroProps{Name: "Alex"},
		Posts: []PostSummary{
			{Title: "Hello", URL: "/posts/hello/", Date: "2024-01-05", Excerpt: "First post", ReadingMinutes: 3},
			{Title: "Undated", URL: "/posts/undated/", ReadingMinutes: 1},
		},
		DateStyle: "d LLL yyyy",
	})
	if err != nil {
		t.Fatalf("IndexPage() error: %v", err)
	}
	assertContains(t, got,
		"Hi, my name is Alex and I am",
		`<a href="/posts/hello/" class="hover:underline">Hello</a>`,
		`<time datetime="2024-01-05">5 Jan 2024</time>`,
		"3 min read",
		"First post",
		`<a href="/posts/undated/" class="hover:underline">Undated</a>`,
	)
}

func TestViews_PostPage(t *testing.T) {
	t.Parallel()

	v := defaultViews(t)
	props := PostProps{
		Title:          "Hello",
		Date:           "2024-03-01",
		Author:         Author{Name: "Alex", Picture: "/img/alex.png"},
		Tags:           []string{"go"},
		ReadingMinutes: 2,
		Outline:        []Heading{{ID: "setup", Text: "Setup", Level: 2}, {ID: "deps", Text: "Deps", Level: 3}},
		Body:           `<p>Body</p>`,
	}

	t.Run("published", func(t *testing.T) {
		t.Parallel()

		got, err := v.PostPage(props)
		if err != nil {
			t.Fatalf("PostPage() error: %v", err)
		}
		assertContains(t, got,
			">Hello</h1>",
			`<span class="text-xl font-bold">Alex</span>`,
			`<img src="/img/alex.png"`,
			`<time datetime="2024-03-01">March 1, 2024</time>`,
			"2 min read",
			`<a href="#setup" class="hover:underline">Setup</a>`,
			`<li class="ml-4"><a href="#deps"`,
			`<div class="markdown"><p>Body</p></div>`,
		)
		if strings.Contains(string(got), UnpublishedMessage) {
			t.Error("published post should not carry the banner")
		}
	})

	t.Run("unpublished", func(t *testing.T) {
		t.Parallel()

		p := props
		p.Unpublished = true
		got, err := v.PostPage(p)
		if err != nil {
			t.Fatalf("PostPage() error: %v", err)
		}
		assertContains(t, got, UnpublishedMessage, "bg-neutral-800")
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()

		p := props
		p.Date = "soon"
		if _, err := v.PostPage(p); !errors.Is(err, ErrTemplate) {
			t.Errorf("PostPage() error = %v, want ErrTemplate", err)
		}
	})
}

func TestJoinClasses(t *testing.T) {
	t.Parallel()

	if got := joinClasses("a b", "", "  c  "); got != "a b c" {
		t.Errorf("joinClasses() = %q, want %q", got, "a b c")
	}
}
