package main

import (
	"strings"

	"github.com/amonks/work/internal/markdown"
)

const descriptionIndent = 2

// formatDescription renders a description block, or "-" when it is empty.
func formatDescription(value string, width int, renderMarkdown bool) string {
	if width < 1 {
		width = 1
	}

	var formatted []byte
	if renderMarkdown {
		formatted = markdown.SafeRender(width, descriptionIndent, []byte(value))
	} else {
		formatted = markdown.Plain(width, descriptionIndent, []byte(value))
	}
	if strings.TrimSpace(string(formatted)) == "" {
		return "-"
	}
	return strings.TrimRight(string(formatted), "\n")
}
