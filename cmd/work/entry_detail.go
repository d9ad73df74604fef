package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/work/internal/ui"
	"github.com/amonks/work/work"
)

const detailLabelWidth = 9

// detailOptions controls how an entry's detail view is rendered.
type detailOptions struct {
	Width    int
	Markdown bool
	Now      time.Time
}

// formatEntryDetail renders every field of an entry plus its direct children.
func formatEntryDetail(entry work.Entry, styles ui.Styles, opts detailOptions) string {
	label := func(name string) string {
		return styles.Label.Render(name+":") + strings.Repeat(" ", detailLabelWidth-len(name)-1)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", label("ID"), entry.ID)
	fmt.Fprintf(&b, "%s %s\n", label("Name"), styles.Name.Render(entry.Name))
	fmt.Fprintf(&b, "%s %s\n", label("Status"), formatStatus(entry.Status, styles))
	fmt.Fprintf(&b, "%s %s\n", label("Created"), ui.FormatTimestamp(entry.CreatedAt, opts.Now))
	fmt.Fprintf(&b, "%s %s\n", label("Modified"), ui.FormatTimestamp(entry.ModifiedAt, opts.Now))

	fmt.Fprintf(&b, "\n%s\n", styles.Label.Render("Description:"))
	if entry.HasDescription() {
		fmt.Fprintf(&b, "%s\n", formatDescription(entry.Description, opts.Width, opts.Markdown))
	} else {
		fmt.Fprintf(&b, "  %s\n", styles.Muted.Render(entry.DescriptionOr("-")))
	}

	children := entry.ChildSummaries()
	if len(children) > 0 {
		fmt.Fprintf(&b, "\n%s\n", styles.Label.Render("Sub-entries:"))
		for _, child := range children {
			row := formatEntryRow(work.Entry{ID: child.ID, Name: child.Name, Status: child.Status}, styles)
			fmt.Fprintf(&b, " %s\n", row)
		}
	}

	return b.String()
}

func formatStatus(status work.Status, styles ui.Styles) string {
	if status == work.StatusCompleted {
		return styles.Completed.Render(string(status) + " " + ui.CompletedIcon)
	}
	return styles.Created.Render(string(status))
}
