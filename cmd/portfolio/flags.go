package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// changedFunc reports whether a flag was given on the command line.
// Boolean flags only override the config when given, so --drafts=false
// can turn off a setting the config file enables.
type changedFunc func(name string) bool

func (c changedFunc) has(name string) bool {
	return c != nil && c(name)
}

// siteFlags holds flags that override the site configuration.
type siteFlags struct {
	output     string
	contentDir string
	basePath   string
	workers    int
	drafts     bool
	changed    changedFunc
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	site   siteFlags
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	site   siteFlags
	addr   string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common      commonFlags
	output      string
	theme       string
	classes     bool
	lineNumbers bool
	plainLinks  bool
	changed     changedFunc
}

// cssFlags holds all flags for the css command.
type cssFlags struct {
	common commonFlags
	output string
	watch  bool
}

// newFlags holds all flags for the new command.
type newFlags struct {
	common commonFlags
	dir    string
	date   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addSiteFlags adds site override flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.contentDir, "content", "", "posts directory")
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix when not served from /")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include unpublished posts")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", stderr, printBuildUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.site.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve", stderr, printServeUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default 127.0.0.1:3000)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.site.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", stderr, printRenderUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringVar(&f.theme, "theme", "", "chroma style for code blocks")
	fs.BoolVar(&f.classes, "classes", false, "emit CSS classes instead of inline styles")
	fs.BoolVar(&f.lineNumbers, "line-numbers", false, "number code block lines")
	fs.BoolVar(&f.plainLinks, "plain-links", false, "do not open external links in a new tab")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseCSSFlags parses css command flags and returns positional args.
func parseCSSFlags(args []string, stderr io.Writer) (*cssFlags, []string, error) {
	f := &cssFlags{}
	fs := newFlagSet("css", stderr, printCSSUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.BoolVar(&f.watch, "watch", false, "rewrite the stylesheet when styles change")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseNewFlags parses new command flags and returns positional args.
func parseNewFlags(args []string, stderr io.Writer) (*newFlags, []string, error) {
	f := &newFlags{}
	fs := newFlagSet("new", stderr, printNewUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.dir, "dir", "", "posts directory (default content.dir)")
	fs.StringVar(&f.date, "date", "auto", "post date: \"auto\", \"auto:FORMAT\", or ISO date")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
