package main

import (
	"strconv"
	"time"

	"github.com/amonks/work/internal/ui"
	"github.com/amonks/work/work"
)

// formatEntryTable renders entries with their status, age, and child count.
func formatEntryTable(entries []work.Entry, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "MODIFIED", "SUBS", "NAME"}, len(entries))

	for _, entry := range entries {
		builder.AddRow([]string{
			entry.ID.String(),
			string(entry.Status),
			ui.FormatTimeAgeShort(entry.CreatedAt, now),
			ui.FormatTimeAgeShort(entry.ModifiedAt, now),
			strconv.Itoa(len(entry.Children)),
			ui.TruncateTableCell(entry.Name),
		})
	}

	return builder.String()
}
