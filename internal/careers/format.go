package careers

import (
	"strings"
	"time"
)

const (
	separator = "\n------------------------\n"
	latestMax = 5
)

// Today is the UTC calendar date used by the "today" filters.
func Today(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// splitTimestamp cuts "2026-10-18T14:30:00Z" (or "2026-10-18 14:30:00")
// into its date and HH:MM parts.
func splitTimestamp(value string) (date, clock string) {
	idx := strings.IndexAny(value, "T ")
	if idx < 0 {
		return value, ""
	}
	date, rest := value[:idx], value[idx+1:]
	if len(rest) > 5 {
		rest = rest[:5]
	}
	return date, rest
}

func joinEntries(entries []string) string {
	return strings.Join(entries, separator)
}
