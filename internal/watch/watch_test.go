package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/alnah/go-portfolio/internal/logging"
)

// Notes:
// - These tests touch the real filesystem notifier; waits are bounded by a
//   generous deadline so slow CI machines do not flake.

const waitFor = 5 * time.Second

func TestNew_NoDirectories(t *testing.T) {
	t.Parallel()

	_, err := New(0, logging.Discard(), filepath.Join(t.TempDir(), "missing"), "")
	if !errors.Is(err, ErrNoDirectories) {
		t.Errorf("New() error = %v, want ErrNoDirectories", err)
	}
}

func TestIgnored(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"/site/post.md":         false,
		"/site/.post.md.swp":    true,
		"/site/post.md~":        true,
		"/site/.git":            true,
		"/site/styles/site.css": false,
	}
	for path, want := range tests {
		if got := ignored(path); got != want {
			t.Errorf("ignored(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher_BatchesChanges(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := New(50*time.Millisecond, logging.Discard(), dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, paths []string) {
			batches <- paths
		})
	}()

	a := filepath.Join(dir, "a.md")
	b := filepath.Join(sub, "b.md")
	if err := os.WriteFile(a, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	deadline := time.After(waitFor)
	for !seen[a] || !seen[b] {
		select {
		case paths := <-batches:
			if !slices.IsSorted(paths) {
				t.Errorf("batch not sorted: %v", paths)
			}
			for _, p := range paths {
				seen[p] = true
			}
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(waitFor):
		t.Fatal("Run did not return after cancel")
	}
}
