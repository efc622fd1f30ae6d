package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/logging"
)

// envConfig holds configuration from PORTFOLIO_* environment variables.
type envConfig struct {
	ConfigPath string // PORTFOLIO_CONFIG: config file name or path
	ContentDir string // PORTFOLIO_CONTENT_DIR: posts directory
	OutputDir  string // PORTFOLIO_OUTPUT_DIR: build output directory
	BasePath   string // PORTFOLIO_BASE_PATH: URL prefix
	Addr       string // PORTFOLIO_ADDR: dev server address
	Workers    int    // PORTFOLIO_WORKERS: parallel renders
}

// knownEnvVars lists valid PORTFOLIO_* environment variables.
var knownEnvVars = map[string]bool{
	"PORTFOLIO_CONFIG":      true,
	"PORTFOLIO_CONTENT_DIR": true,
	"PORTFOLIO_OUTPUT_DIR":  true,
	"PORTFOLIO_BASE_PATH":   true,
	"PORTFOLIO_ADDR":        true,
	"PORTFOLIO_WORKERS":     true,
	logging.EnvLevel:        true,
	logging.EnvFormat:       true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PORTFOLIO_CONFIG"),
		ContentDir: os.Getenv("PORTFOLIO_CONTENT_DIR"),
		OutputDir:  os.Getenv("PORTFOLIO_OUTPUT_DIR"),
		BasePath:   os.Getenv("PORTFOLIO_BASE_PATH"),
		Addr:       os.Getenv("PORTFOLIO_ADDR"),
	}

	if workers := os.Getenv("PORTFOLIO_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for unrecognized PORTFOLIO_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "PORTFOLIO_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment
// variables. CLI flags are merged afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
