// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net"
	"strings"

	"github.com/alnah/go-portfolio/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForAddrInUse returns hints for a dev server that cannot listen on addr.
// Inside a container a loopback address is unreachable from the host, so
// binding all interfaces is suggested as well.
func ForAddrInUse(addr string) string {
	hints := []string{"use --addr to pick another port"}

	host, _, err := net.SplitHostPort(addr)
	if err == nil && IsInContainer() && isLoopback(host) {
		hints = append(hints, "inside a container, bind 0.0.0.0 to reach the server from the host")
	}

	return formatHints(hints)
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-portfolio/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-portfolio") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForContentDirectory returns hints when no posts can be discovered.
func ForContentDirectory(dir string) string {
	return format("create " + dir + " or set content.dir in the config")
}

// ForFrontMatter returns hints for malformed front matter.
func ForFrontMatter() string {
	return format("front matter must open the file between --- (YAML) or +++ (TOML) lines")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForThemeNotFound returns hints for unknown syntax highlighting themes.
func ForThemeNotFound(name string) string {
	return format(name + " is not a chroma style; see https://xyproto.github.io/splash/docs/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
