package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-portfolio/internal/content"
)

// runNew scaffolds an unpublished post named after its title.
func runNew(args []string, env *Environment) error {
	flags, positional, err := parseNewFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	title := strings.TrimSpace(strings.Join(positional, " "))
	if title == "" {
		return fmt.Errorf("%w: new needs a post title", ErrUsage)
	}
	applyLogLevel(flags.common)

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	dir := cfg.Content.Dir
	if flags.dir != "" {
		dir = flags.dir
	}

	path, err := content.NewPost(dir, title, flags.date, env.Now())
	if err != nil {
		return annotate(err, cfg)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
	return nil
}
