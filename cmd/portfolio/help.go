package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the static site")
	fmt.Fprintln(w, "  serve      Build, serve and rebuild on change with live reload")
	fmt.Fprintln(w, "  render     Render one markdown file to an HTML fragment")
	fmt.Fprintln(w, "  css        Write the stylesheet bundle")
	fmt.Fprintln(w, "  new        Create an unpublished post")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'portfolio help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: portfolio)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: out)")
	fmt.Fprintln(w, "      --content <dir>       Posts directory (default: content/posts)")
	fmt.Fprintln(w, "      --base-path <path>    URL prefix when not served from /")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel renders (0 = auto, max 8)")
	fmt.Fprintln(w, "      --drafts              Include unpublished posts, with a banner")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the landing page, every post, the stylesheet and the public")
	fmt.Fprintln(w, "directory into the output directory.")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, serve it and rebuild when sources change.")
	fmt.Fprintln(w, "Open pages reload after every rebuild.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default: 127.0.0.1:3000)")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio render <file|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown to an HTML fragment. Front matter is skipped.")
	fmt.Fprintln(w, "Use - to read from standard input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --theme <name>        Chroma style (default: catppuccin-macchiato)")
	fmt.Fprintln(w, "      --classes             Emit CSS classes instead of inline styles")
	fmt.Fprintln(w, "      --line-numbers        Number code block lines")
	fmt.Fprintln(w, "      --plain-links         Do not open external links in a new tab")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write assets/css/site.css: base style, user CSS files, then the")
	fmt.Fprintln(w, "highlight theme when highlight.classes is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stylesheet:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: out)")
	fmt.Fprintln(w, "      --watch               Rewrite when styles change")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printNewUsage prints usage for the new command.
func printNewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio new <title> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create <slug>.md with front matter, unpublished.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Post:")
	fmt.Fprintln(w, "      --dir <dir>           Posts directory (default: content.dir)")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or ISO date")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command. Unknown commands are a
// usage error.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "new":
		printNewUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: portfolio version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: portfolio help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, args[0])
	}
	return nil
}
