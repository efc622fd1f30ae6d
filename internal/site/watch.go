package site

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/alnah/go-portfolio/internal/watch"
)

// WatchDirs returns the directories whose changes trigger a rebuild.
// Empty and duplicate entries are dropped.
func (b *Builder) WatchDirs() []string {
	return uniqueDirs(
		b.cfg.Content.Dir,
		b.cfg.Content.PublicDir,
		b.cfg.Styles.Dir,
		b.cfg.Assets.BasePath,
	)
}

// StyleDirs returns the directories the stylesheet bundle reads from.
func (b *Builder) StyleDirs() []string {
	return uniqueDirs(b.cfg.Styles.Dir, b.cfg.Assets.BasePath)
}

func uniqueDirs(candidates ...string) []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, d := range candidates {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}

// Watch rebuilds the site after every batch of source changes until ctx is
// done. onBuild, when set, receives each successful report. Build errors are
// logged and watching continues.
func (b *Builder) Watch(ctx context.Context, onBuild func(*Report)) error {
	w, err := watch.New(watch.DefaultDebounce, b.logger, b.WatchDirs()...)
	if err != nil {
		return err
	}

	return w.Run(ctx, func(ctx context.Context, paths []string) {
		paths = b.outsideOutput(paths)
		if len(paths) == 0 {
			return
		}
		b.logger.WithField("changed", len(paths)).Info("rebuilding")

		report, err := b.Build(ctx)
		if err != nil {
			b.logger.WithError(err).Error("rebuild failed")
			return
		}
		if onBuild != nil {
			onBuild(report)
		}
	})
}

// outsideOutput drops paths inside the output directory, so a public or
// content directory that contains it does not rebuild forever.
func (b *Builder) outsideOutput(paths []string) []string {
	out, err := filepath.Abs(b.cfg.Output.Dir)
	if err != nil {
		return paths
	}
	kept := paths[:0]
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err == nil && (abs == out || strings.HasPrefix(abs, out+string(filepath.Separator))) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
