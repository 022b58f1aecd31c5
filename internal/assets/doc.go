// Package assets provides the style sheets and the page template used to
// render knowledge base pages.
//
// Three loaders implement AssetLoader:
//
//	EmbeddedLoader    compiled-in assets (styles/knowledge-base.css, templates/page.html)
//	FilesystemLoader  a custom directory with the same layout
//	AssetResolver     custom directory first, embedded fallback
//
// A custom directory can therefore override the style sheet, the page
// template, or both:
//
//	{basePath}/
//	├── styles/{name}.css
//	└── templates/page.html
//
// Asset names are plain identifiers. Separators and dots are rejected, and
// FilesystemLoader resolves symlinks before checking that a path stays
// inside the base directory.
package assets
