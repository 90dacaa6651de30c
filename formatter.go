package tutorials

import (
	"strings"
	"time"
)

// NoResultsMessage is shown in place of the post list when a query hides
// every entry.
const NoResultsMessage = "No results. Try another search or reset the filters."

// FormatEntries formats entries for display.
// Uses title if available, falls back to slug.
// Entries are separated by blank lines.
func FormatEntries(entries []PostEntry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		header := e.Title
		if header == "" {
			header = e.Slug
		}
		b.WriteString("## " + header)
		if e.Date != "" {
			b.WriteString(" (" + e.Date + ")")
		}
		if e.Abstract != "" {
			b.WriteString("\n" + e.Abstract)
		}
		if len(e.Keywords) > 0 {
			b.WriteString("\nkeywords: " + strings.Join(e.Keywords, ", "))
		}
		b.WriteString("\n/" + e.Slug)
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatDate formats a timestamp as a short day-month-year date,
// e.g. "5 Nov 2019".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006")
}
