// Package config loads the site configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-portfolio/internal/dateutil"
	"github.com/alnah/go-portfolio/internal/fileutil"
	"github.com/alnah/go-portfolio/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxURLLength         = 2048 // Browser limit
	MaxNameLength        = 100
	MaxLangLength        = 35 // BCP 47 tags stay well below this
	MaxBioLength         = 2000
	MaxSkillLength       = 50
	MaxHeadlineLength    = 100
	MaxClassLength       = 200 // Utility class list on a headline segment
	MaxPathLength        = 4096
	MaxPatternLength     = 200
	MaxAddrLength        = 255
	MaxFooterLength      = 500
)

// MaxWorkers caps concurrent post renders.
const MaxWorkers = 8

// Config holds all configuration for site generation.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Author    AuthorConfig    `yaml:"author"`
	Content   ContentConfig   `yaml:"content"`
	Output    OutputConfig    `yaml:"output"`
	Highlight HighlightConfig `yaml:"highlight"`
	Styles    StylesConfig    `yaml:"styles"`
	Assets    AssetsConfig    `yaml:"assets"`
	Build     BuildConfig     `yaml:"build"`
	Server    ServerConfig    `yaml:"server"`
}

// SiteConfig defines the document metadata shared by every page.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"ogImage"`  // Open Graph image URL
	Favicon     string `yaml:"favicon"`  // default: /favicon/favicon.ico
	Lang        string `yaml:"lang"`     // default: en
	BasePath    string `yaml:"basePath"` // URL prefix when not served from /
	Footer      string `yaml:"footer"`   // Footer text, empty = author name
}

// AuthorConfig defines the landing page introduction.
type AuthorConfig struct {
	Name     string            `yaml:"name"`
	Headline []HeadlineSegment `yaml:"headline"`
	Bio      string            `yaml:"bio"`
	Skills   []string          `yaml:"skills"`
}

// HeadlineSegment is one span of the landing page headline.
type HeadlineSegment struct {
	Text   string `yaml:"text"`
	Accent string `yaml:"accent"` // Extra classes, e.g. "text-green-400"
}

// ContentConfig defines where posts and static files live.
type ContentConfig struct {
	Dir       string `yaml:"dir"`       // default: content/posts
	Pattern   string `yaml:"pattern"`   // doublestar glob, default: **/*.md
	PublicDir string `yaml:"publicDir"` // copied verbatim, default: public
}

// OutputConfig defines the build destination.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default: out
}

// HighlightConfig defines fenced code block highlighting.
type HighlightConfig struct {
	Style       string `yaml:"style"`       // chroma style, default: catppuccin-macchiato
	Classes     bool   `yaml:"classes"`     // CSS classes instead of inline styles
	LineNumbers bool   `yaml:"lineNumbers"` // prefix lines with numbers
}

// StylesConfig defines the stylesheet bundle.
type StylesConfig struct {
	Style   string `yaml:"style"`   // Base style name in assets, default: default
	Dir     string `yaml:"dir"`     // User CSS directory, empty = none
	Pattern string `yaml:"pattern"` // doublestar glob under Dir, default: **/*.css
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// BuildConfig defines build behavior.
type BuildConfig struct {
	Drafts     bool   `yaml:"drafts"`     // Render unpublished posts with a banner
	Workers    int    `yaml:"workers"`    // 0 = auto
	DateFormat string `yaml:"dateFormat"` // date-fns pattern, default: LLLL d, yyyy
	PlainLinks bool   `yaml:"plainLinks"` // Do not open external links in a new tab
}

// ServerConfig defines the development server.
type ServerConfig struct {
	Addr string `yaml:"addr"` // default: 127.0.0.1:3000
}

// DefaultConfig returns the configuration of the original portfolio.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       "Alex frontend developer from Vilnius Lithuania",
			Description: "My skills and latest work.",
			Favicon:     "/favicon/favicon.ico",
			Lang:        "en",
		},
		Author: AuthorConfig{
			Name: "Alex",
			Headline: []HeadlineSegment{
				{Text: "Passionate"},
				{Text: "about building", Accent: "text-slate-800"},
				{Text: "awesome", Accent: "text-green-400"},
				{Text: "Frontend"},
			},
			Bio: "I have been doing web design and UI/UX for 20 years and frontend for 15 years. " +
				"I used and worked with almost anything out there but I am most passionate " +
				"working with Nextjs, Tailwind and Figma. I am comfortable working with:",
			Skills: []string{
				"JavaScript and Typescript",
				"Tailwind",
				"Figma",
				"nextjs",
				"NodeJS",
				"Shopify",
				"Redux",
				"Zustand",
				"Express",
				"NestJS",
			},
		},
		Content: ContentConfig{
			Dir:       "content/posts",
			Pattern:   "**/*.md",
			PublicDir: "public",
		},
		Output:    OutputConfig{Dir: "out"},
		Highlight: HighlightConfig{Style: "catppuccin-macchiato"},
		Styles:    StylesConfig{Style: "default", Pattern: "**/*.css"},
		Build:     BuildConfig{DateFormat: dateutil.DefaultPattern},
		Server:    ServerConfig{Addr: "127.0.0.1:3000"},
	}
}

// applyDefaults fills empty fields from DefaultConfig.
// Author content is only defaulted as a whole: a config that names its
// author keeps its own (possibly empty) headline, bio and skills.
func (c *Config) applyDefaults() {
	d := DefaultConfig()

	setDefault(&c.Site.Title, d.Site.Title)
	setDefault(&c.Site.Description, d.Site.Description)
	setDefault(&c.Site.Favicon, d.Site.Favicon)
	setDefault(&c.Site.Lang, d.Site.Lang)

	if c.Author.Name == "" {
		c.Author = d.Author
	}

	setDefault(&c.Content.Dir, d.Content.Dir)
	setDefault(&c.Content.Pattern, d.Content.Pattern)
	setDefault(&c.Content.PublicDir, d.Content.PublicDir)
	setDefault(&c.Output.Dir, d.Output.Dir)
	setDefault(&c.Highlight.Style, d.Highlight.Style)
	setDefault(&c.Styles.Style, d.Styles.Style)
	setDefault(&c.Styles.Pattern, d.Styles.Pattern)
	setDefault(&c.Build.DateFormat, d.Build.DateFormat)
	setDefault(&c.Server.Addr, d.Server.Addr)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.description", c.Site.Description, MaxDescriptionLength},
		{"site.ogImage", c.Site.OGImage, MaxURLLength},
		{"site.favicon", c.Site.Favicon, MaxURLLength},
		{"site.lang", c.Site.Lang, MaxLangLength},
		{"site.basePath", c.Site.BasePath, MaxURLLength},
		{"site.footer", c.Site.Footer, MaxFooterLength},
		{"author.name", c.Author.Name, MaxNameLength},
		{"author.bio", c.Author.Bio, MaxBioLength},
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"content.pattern", c.Content.Pattern, MaxPatternLength},
		{"content.publicDir", c.Content.PublicDir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"styles.dir", c.Styles.Dir, MaxPathLength},
		{"styles.pattern", c.Styles.Pattern, MaxPatternLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for i, seg := range c.Author.Headline {
		if err := validateFieldLength(fmt.Sprintf("author.headline[%d].text", i), seg.Text, MaxHeadlineLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("author.headline[%d].accent", i), seg.Accent, MaxClassLength); err != nil {
			return err
		}
	}
	for i, skill := range c.Author.Skills {
		if err := validateFieldLength(fmt.Sprintf("author.skills[%d]", i), skill, MaxSkillLength); err != nil {
			return err
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}
	if c.Build.DateFormat != "" {
		if _, err := dateutil.ParsePattern(c.Build.DateFormat); err != nil {
			return fmt.Errorf("build.dateFormat: %w", err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Empty fields are filled from DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = ResolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if len(data) > 0 {
		if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
		}
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// ./name.yaml, ./name.yml, then the same names in the user config
// directory under go-portfolio/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-portfolio", name+ext))
		}
	}
	return paths
}

// ResolveConfigPath returns the first existing file among SearchPaths(name).
func ResolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
