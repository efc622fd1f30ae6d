package main

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-portfolio/internal/server"
	"github.com/alnah/go-portfolio/internal/site"
	"github.com/alnah/go-portfolio/internal/watch"
)

// runServe builds the site, serves it and rebuilds on change until ctx is
// done. Open pages reload after every successful rebuild.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if err := noArgs("serve", positional); err != nil {
		return err
	}
	applyLogLevel(flags.common)

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeSiteFlags(flags.site, cfg)
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}

	builder, err := newBuilder(cfg, env)
	if err != nil {
		return annotate(err, cfg)
	}

	// The first build must succeed; later failures keep the last good site.
	report, err := builder.Build(ctx)
	if err != nil {
		return annotate(err, cfg)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %s\n", report)
		fmt.Fprintf(env.Stdout, "Serving %s on http://%s\n", report.Output, cfg.Server.Addr)
	}

	srv := server.New(cfg.Output.Dir, cfg.Server.Addr, server.WithLogger(env.Logger("server")))
	logger := env.Logger("serve")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx)
	})
	g.Go(func() error {
		err := builder.Watch(ctx, func(*site.Report) {
			srv.Reload()
		})
		if errors.Is(err, watch.ErrNoDirectories) {
			logger.Warn("nothing to watch, serving without rebuilds")
			return nil
		}
		return err
	})

	return annotate(g.Wait(), cfg)
}
