// Package assets provides the stylesheets embedded in standalone screenplay
// documents.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a custom directory on disk
//	    └── StyleResolver     - custom first, embedded as fallback
//
// The built-in styles are "screenplay" (the default, set in Courier on a
// letter-width column) and "draft" (a compact reading layout that shows
// notes prominently). Both style the fixed class vocabulary produced by the
// conversion and hide <secret> spans.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
