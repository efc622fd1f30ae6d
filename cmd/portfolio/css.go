package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-portfolio/internal/watch"
)

// runCSS writes the stylesheet bundle, and with --watch rewrites it after
// every change to the styles or assets directories.
func runCSS(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCSSFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if err := noArgs("css", positional); err != nil {
		return err
	}
	applyLogLevel(flags.common)

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}

	builder, err := newBuilder(cfg, env)
	if err != nil {
		return annotate(err, cfg)
	}

	path, err := builder.WriteStylesheet()
	if err != nil {
		return annotate(err, cfg)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
	}

	if !flags.watch {
		return nil
	}

	logger := env.Logger("css")
	w, err := watch.New(watch.DefaultDebounce, logger, builder.StyleDirs()...)
	if err != nil {
		if errors.Is(err, watch.ErrNoDirectories) {
			return fmt.Errorf("%w: --watch needs styles.dir or assets.basePath", ErrUsage)
		}
		return err
	}

	return w.Run(ctx, func(context.Context, []string) {
		path, err := builder.WriteStylesheet()
		if err != nil {
			logger.WithError(annotate(err, cfg)).Error("stylesheet rebuild failed")
			return
		}
		logger.WithField("path", path).Info("stylesheet rewritten")
	})
}
