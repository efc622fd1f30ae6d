package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativeURLs resolves relative image and link paths against the
// site's base path, so a post rendered at /posts/<slug>/ still finds
// "images/cover.png" at /images/cover.png.
// If basePath is empty, returns the HTML unchanged.
//
// Rewrites:
//   - img[src]: relative paths to images
//   - a[href]: relative paths (not anchors, not URLs)
//
// Does NOT rewrite:
//   - video, audio, source, srcset
//   - CSS url() references
//   - Absolute paths or URLs (already resolved)
func RewriteRelativeURLs(htmlContent, basePath string) (string, error) {
	if basePath == "" || htmlContent == "" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, normalizeBasePath(basePath))

	return renderHTML(doc, isFragment)
}

// normalizeBasePath returns basePath with exactly one leading and trailing slash.
func normalizeBasePath(basePath string) string {
	trimmed := strings.Trim(basePath, "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed + "/"
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and rewrites relative paths.
// Code blocks are skipped: their content is literal text.
func rewriteNode(n *html.Node, basePath string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", basePath)
		case atom.A:
			rewriteAttr(n, "href", basePath)
		case atom.Pre, atom.Code:
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, basePath)
	}
}

// rewriteAttr rewrites a single attribute if it's a relative path.
func rewriteAttr(n *html.Node, attrName, basePath string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}
		n.Attr[i].Val = resolveAgainstBase(attr.Val, basePath)
	}
}

// resolveAgainstBase joins a relative reference to basePath.
// ".." segments cannot climb above basePath; query and fragment are kept.
func resolveAgainstBase(ref, basePath string) string {
	suffix := ""
	if i := strings.IndexAny(ref, "?#"); i != -1 {
		ref, suffix = ref[:i], ref[i:]
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+ref), "/")
	if cleaned == "" || cleaned == "." {
		return basePath + suffix
	}
	return basePath + cleaned + suffix
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(p string) bool {
	if p == "" {
		return false
	}

	// Skip anchors and queries on the current page
	if strings.HasPrefix(p, "#") || strings.HasPrefix(p, "?") {
		return false
	}

	// Skip absolute paths and protocol-relative URLs
	if strings.HasPrefix(p, "/") {
		return false
	}

	// Skip anything with a scheme (http:, mailto:, data:, ...)
	if i := strings.IndexAny(p, ":/?#"); i != -1 && p[i] == ':' {
		return false
	}

	return true
}
