package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/content"
	"github.com/alnah/go-portfolio/internal/hints"
	"github.com/alnah/go-portfolio/internal/logging"
	"github.com/alnah/go-portfolio/internal/server"
	"github.com/alnah/go-portfolio/internal/site"
)

// defaultConfigName is looked up when neither --config nor
// PORTFOLIO_CONFIG is set. Its absence is not an error.
const defaultConfigName = "portfolio"

// applyLogLevel maps --verbose and --quiet to the shared log level.
func applyLogLevel(f commonFlags) {
	switch {
	case f.verbose:
		logging.SetLevel(logrus.DebugLevel)
	case f.quiet:
		logging.SetLevel(logrus.WarnLevel)
	}
}

// loadConfig resolves configuration: defaults, then the config file, then
// PORTFOLIO_* variables. Commands merge their flags last.
func loadConfig(name string) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	switch {
	case name != "":
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w%s", err, configHint(err, name))
		}
		cfg = loaded
	default:
		if _, err := config.ResolveConfigPath(defaultConfigName); err != nil {
			cfg = config.DefaultConfig()
			break
		}
		loaded, err := config.LoadConfig(defaultConfigName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

func configHint(err error, name string) string {
	if errors.Is(err, config.ErrConfigNotFound) {
		return hints.ForConfigNotFound(config.SearchPaths(name))
	}
	return ""
}

// mergeSiteFlags applies site flags over cfg (CLI wins).
func mergeSiteFlags(f siteFlags, cfg *config.Config) {
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.contentDir != "" {
		cfg.Content.Dir = f.contentDir
	}
	if f.basePath != "" {
		cfg.Site.BasePath = f.basePath
	}
	if f.workers != 0 {
		cfg.Build.Workers = f.workers
	}
	if f.changed.has("drafts") {
		cfg.Build.Drafts = f.drafts
	}
}

// annotate appends the hint matching err, if any.
func annotate(err error, cfg *config.Config) error {
	if err == nil {
		return nil
	}

	var hint string
	switch {
	case errors.Is(err, server.ErrAddrInUse):
		hint = hints.ForAddrInUse(cfg.Server.Addr)
	case errors.Is(err, content.ErrFrontMatter):
		hint = hints.ForFrontMatter()
	case errors.Is(err, content.ErrContentDir):
		hint = hints.ForContentDirectory(cfg.Content.Dir)
	case errors.Is(err, site.ErrWrite):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrStyleNotFound):
		if resolver, rerr := assets.NewAssetResolver(cfg.Assets.BasePath); rerr == nil {
			available, _ := resolver.ListStyles()
			hint = hints.ForStyleNotFound(available)
		}
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// newBuilder creates a site builder logging through env.
func newBuilder(cfg *config.Config, env *Environment) (*site.Builder, error) {
	return site.New(cfg, site.WithLogger(env.Logger("site")))
}
