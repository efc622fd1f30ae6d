package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
)

// ExternalLinks marks links to other sites so they open in a new tab.
// Only absolute http(s) and protocol-relative destinations are touched.
func ExternalLinks(doc ast.Node, _ []byte) error {
	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok || !isExternalURL(link.Destination) {
			return ast.WalkContinue, nil
		}
		// goldmark renders attribute values as []byte
		link.SetAttributeString("target", []byte("_blank"))
		link.SetAttributeString("rel", []byte("noopener noreferrer"))
		return ast.WalkContinue, nil
	})
}

// isExternalURL reports whether dest points outside the site.
func isExternalURL(dest []byte) bool {
	return bytes.HasPrefix(dest, []byte("http://")) ||
		bytes.HasPrefix(dest, []byte("https://")) ||
		bytes.HasPrefix(dest, []byte("//"))
}
