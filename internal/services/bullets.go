package services

import "strings"

// Experience descriptions in a built CV are a single string carrying a
// bulleted list: each item starts with a hyphen and ends with a semicolon,
// e.g. "- Managed a team of 5 engineers; - Increased sales by 20% in Q3;".
// SplitBullets is the parse direction the renderer uses; FormatBullets is
// its inverse.

// SplitBullets splits a bulleted description into its items. Segments are
// split on ";", trimmed, stripped of one leading hyphen, and dropped when
// empty.
func SplitBullets(s string) []string {
	var items []string
	for _, segment := range strings.Split(s, ";") {
		segment = strings.TrimSpace(segment)
		segment = strings.TrimPrefix(segment, "-")
		segment = strings.TrimSpace(segment)
		if segment != "" {
			items = append(items, segment)
		}
	}
	return items
}

// FormatBullets renders items back into the delimited wire form.
// SplitBullets(FormatBullets(items)) yields items back for non-empty,
// trimmed input.
func FormatBullets(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString(";")
	}
	return b.String()
}
