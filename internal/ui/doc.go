// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead:
//
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration
//
// Template locations are rendered with FieldRef:
//
//	ui.FieldRef("DATABASE_CREDENTIALS", "PASSWORD") // [DATABASE_CREDENTIALS] PASSWORD
package ui
