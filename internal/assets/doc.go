// Package assets provides the CSS styles and HTML templates of the site.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles and templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the site builder. Styles fall back
// whole: a custom styles/{name}.css replaces the embedded one. Template sets
// merge per file: a custom templates/{name}/ directory may override only
// intro.html and keep every other embedded template.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # base stylesheet (e.g., minimal.css)
//	└── templates/
//	    └── {name}/
//	        ├── layout.html      # document shell
//	        ├── alert.html       # banner
//	        ├── intro.html       # landing page introduction
//	        ├── date.html        # <time> element
//	        ├── index.html       # landing page body
//	        └── post.html        # post page body
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
