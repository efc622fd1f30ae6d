// Package pipeline implements the Markdown-to-HTML rendering pipeline.
//
// A conversion runs a fixed, ordered list of stages:
//   - Markdown preprocessing (line ending normalization)
//   - Parsing into a goldmark document tree (auto heading IDs)
//   - Tree transforms (external link decoration)
//   - Rendering to an HTML fragment, with fenced code blocks highlighted
//     by chroma through goldmark-highlighting
//
// Fenced code blocks with an unknown or missing language are written as plain
// <pre><code> blocks. An unknown theme name falls back to DefaultTheme
// (catppuccin-macchiato). Neither case is an error.
//
// Raw HTML in the source is never passed through, so the output only contains
// markup produced by the renderer itself.
package pipeline
