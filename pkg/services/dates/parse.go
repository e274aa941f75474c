package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// The feed serializes spreadsheet dates as "Date(2025,0,15)" with a
// zero-based month index. ISO strings show up in the same columns.
var legacyPattern = regexp.MustCompile(`Date\((\d+),(\d+),(\d+)\)`)

var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Parse normalizes a raw feed date into a UTC calendar day. The second
// boolean is false for empty or unrecognized input; callers treat that
// as "record does not match", never as an error.
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if m := legacyPattern.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		// month is zero-based in the wire form.
		return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC), true
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Midnight(t), true
		}
	}

	return time.Time{}, false
}

// ParseOptional is Parse for adapter use: it returns nil instead of a
// zero time so absent and unparseable dates look the same downstream.
func ParseOptional(raw string) *time.Time {
	t, ok := Parse(raw)
	if !ok {
		return nil
	}
	return &t
}

// Midnight truncates t to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDisplay renders a parsed date as D/M/YYYY for humans. The
// legacy form's +1 month correction happens here implicitly, because
// time.Month is one-based. Nil renders empty.
func FormatDisplay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
