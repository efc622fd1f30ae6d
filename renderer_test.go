package portfolio

// Notes:
// - These tests cover the public facade; stage-level behavior is tested in
//   internal/pipeline.

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRenderer_Render - observable properties
// ---------------------------------------------------------------------------

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		input   string
		want    []string
		wantNot []string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "heading",
			input: "# Title",
			want:  []string{`<h1 id="title">Title</h1>`},
		},
		{
			name:  "plain link when decoration is off",
			opts:  []Option{WithExternalLinks(false)},
			input: "[text](https://example.com)",
			want:  []string{`<a href="https://example.com">text</a>`},
		},
		{
			name:  "external link opens in new tab by default",
			input: "[text](https://example.com)",
			want:  []string{`target="_blank"`, `rel="noopener noreferrer"`},
		},
		{
			name:  "python fence is highlighted",
			input: "```python\ndef f():\n    return 1\n```",
			want:  []string{"<pre", "<span", "style="},
		},
		{
			name:    "classes instead of inline styles",
			opts:    []Option{WithClasses(true)},
			input:   "```python\ndef f():\n    return 1\n```",
			want:    []string{`class="chroma"`},
			wantNot: []string{"style="},
		},
		{
			name:  "line numbers",
			opts:  []Option{WithClasses(true), WithLineNumbers(true)},
			input: "```go\na := 1\nb := 2\n```",
			want:  []string{`class="ln"`},
		},
		{
			name:    "unknown language stays plain",
			input:   "```notalanguage\nx = 1\n```",
			want:    []string{"<pre", "x = 1"},
			wantNot: []string{"<span"},
		},
		{
			name:    "fence without language stays plain",
			input:   "```\nx = 1\n```",
			want:    []string{"<pre", "x = 1"},
			wantNot: []string{"<span"},
		},
		{
			name:  "unknown theme falls back",
			opts:  []Option{WithTheme("no-such-theme")},
			input: "```go\nfunc main() {}\n```",
			want:  []string{"<span"},
		},
		{
			name:    "raw HTML is not passed through",
			input:   "<script>alert(1)</script>\n\ntext",
			want:    []string{"<p>text</p>"},
			wantNot: []string{"<script>"},
		},
		{
			name:  "CRLF input",
			input: "# A\r\n\r\nB\r\n",
			want:  []string{`<h1 id="a">A</h1>`, "<p>B</p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewRenderer(tt.opts...).Render(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if tt.input == "" && got != "" {
				t.Errorf("Render(\"\") = %q, want empty", got)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, missing %q", got, want)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("Render() = %q, should not contain %q", got, not)
				}
			}
		})
	}
}

func TestRenderer_Errors(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		input   string
		wantErr error
	}{
		{"invalid UTF-8", context.Background(), "# \xff\xfe", ErrInvalidMarkdown},
		{"cancelled context", cancelled, "# Title", context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewRenderer().Render(tt.ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Render() output = %q, want none on error", got)
			}
		})
	}
}

func TestRenderer_DeterministicAndConcurrent(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	input := "# Post\n\n```go\nfunc main() {}\n```\n\n[link](https://example.com)"

	want, err := r.Render(context.Background(), input)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = r.Render(context.Background(), input)
		}()
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("render %d differs from the first render", i)
		}
	}
}

func TestMarkdownToHTML(t *testing.T) {
	t.Parallel()

	got, err := MarkdownToHTML(context.Background(), "*hi*")
	if err != nil {
		t.Fatalf("MarkdownToHTML() error: %v", err)
	}
	if !strings.Contains(got, "<em>hi</em>") {
		t.Errorf("MarkdownToHTML() = %q, want emphasis", got)
	}
}
