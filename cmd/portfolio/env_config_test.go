package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-portfolio/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("PORTFOLIO_CONFIG", "site.yaml")
	t.Setenv("PORTFOLIO_CONTENT_DIR", "/content")
	t.Setenv("PORTFOLIO_OUTPUT_DIR", "/out")
	t.Setenv("PORTFOLIO_BASE_PATH", "/blog")
	t.Setenv("PORTFOLIO_ADDR", "0.0.0.0:8080")
	t.Setenv("PORTFOLIO_WORKERS", "4")

	got := loadEnvConfig()
	want := envConfig{
		ConfigPath: "site.yaml",
		ContentDir: "/content",
		OutputDir:  "/out",
		BasePath:   "/blog",
		Addr:       "0.0.0.0:8080",
		Workers:    4,
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	for _, value := range []string{"abc", "0", "-2"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("PORTFOLIO_WORKERS", value)
			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("Workers = %d, want 0 for %q", got, value)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("PORTFOLIO_OUTPUT_DIRR", "x")
	t.Setenv("PORTFOLIO_OUTPUT_DIR", "x")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	got := buf.String()
	if !strings.Contains(got, "PORTFOLIO_OUTPUT_DIRR") {
		t.Errorf("warnings = %q, want PORTFOLIO_OUTPUT_DIRR", got)
	}
	if strings.Contains(got, "PORTFOLIO_OUTPUT_DIR ") || strings.Contains(got, "PORTFOLIO_LOG_LEVEL") {
		t.Errorf("warnings = %q, known variables reported", got)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - priority
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	applyEnvConfig(&envConfig{OutputDir: "/env-out", Workers: 2}, cfg)

	if cfg.Output.Dir != "/env-out" {
		t.Errorf("Output.Dir = %q, want /env-out", cfg.Output.Dir)
	}
	if cfg.Build.Workers != 2 {
		t.Errorf("Build.Workers = %d, want 2", cfg.Build.Workers)
	}
	if cfg.Content.Dir != config.DefaultConfig().Content.Dir {
		t.Errorf("Content.Dir = %q, unset variable changed the config", cfg.Content.Dir)
	}

	mergeSiteFlags(siteFlags{output: "/flag-out"}, cfg)
	if cfg.Output.Dir != "/flag-out" {
		t.Errorf("Output.Dir = %q, want flag value /flag-out", cfg.Output.Dir)
	}
}
