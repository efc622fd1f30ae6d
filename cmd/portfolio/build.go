package main

import (
	"context"
	"fmt"
)

// runBuild builds the site once.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if err := noArgs("build", positional); err != nil {
		return err
	}
	applyLogLevel(flags.common)

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeSiteFlags(flags.site, cfg)

	builder, err := newBuilder(cfg, env)
	if err != nil {
		return annotate(err, cfg)
	}

	report, err := builder.Build(ctx)
	if err != nil {
		return annotate(err, cfg)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %s -> %s\n", report, report.Output)
	}
	return nil
}
