// Package pipeline implements the Markdown-to-HTML conversion stages.
//
// The default engine is a line-oriented translator for the knowledge base
// Markdown subset:
//   - ConvertLines classifies each line into headings, rules, list items,
//     blockquotes, paragraphs, fenced code and pipe tables
//   - RenderInline escapes text and rewrites bold, italic, code and links
//   - RenderTable renders buffered table rows
//   - ExtractTitle picks the document title
//
// GoldmarkConverter is the opt-in CommonMark engine. Around either engine
// sit the preprocessor (line endings), the table of contents injection, the
// page renderer (html/template) and, for PDF output, relative path rewriting.
//
// PDF rendering itself lives in the root md2kb package.
package pipeline
