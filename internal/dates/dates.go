// Package dates normalizes the inconsistent date strings found across the
// export sources into canonical points in time. Parsing never fails hard:
// callers get an ok flag and are expected to exclude unparseable records from
// date-bucketed views while keeping them in totals.
package dates

import (
	"strings"
	"time"
)

// Layouts of the two fixed export formats.
const (
	// LayoutSentAt matches the invitation "Sent At" field, e.g. "1/2/24, 3:00 PM".
	LayoutSentAt = "1/2/06, 3:04 PM"
	// LayoutConnectedOn matches the connection "Connected On" field, e.g. "02 Jan 2024".
	LayoutConnectedOn = "02 Jan 2006"
)

// genericLayouts is the fallback chain for the ISO-like date fields (job
// create dates, message dates, rich media timestamps).
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
}

// Parse converts a date string into a point in time. A non-empty layout hint is
// tried first; the generic fallback chain covers everything else. The second
// return value is false on empty input, format mismatch, or an impossible
// calendar date.
func Parse(text, layout string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if layout != "" {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	for _, l := range genericLayouts {
		if t, err := time.Parse(l, text); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// MonthKey derives the canonical "YYYY-MM" bucket key for a point in time.
// Zero padding makes lexicographic order chronological.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
