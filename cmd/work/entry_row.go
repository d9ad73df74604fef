package main

import (
	"strings"

	"github.com/amonks/work/internal/ui"
	"github.com/amonks/work/work"
)

// formatEntryRow renders an entry as ` <id> ->> <name> [✔]`.
func formatEntryRow(entry work.Entry, styles ui.Styles) string {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(entry.ID.String())
	b.WriteString(" ")
	b.WriteString(styles.Arrow.Render("->>"))
	b.WriteString(" ")
	b.WriteString(styles.Name.Render(entry.Name))
	if entry.IsCompleted() {
		b.WriteString(" ")
		b.WriteString(styles.Completed.Render(ui.CompletedIcon))
	}
	return b.String()
}

func formatEntryRows(entries []work.Entry, styles ui.Styles) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(formatEntryRow(entry, styles))
		b.WriteString("\n")
	}
	return b.String()
}
