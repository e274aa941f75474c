// Package calendar builds the month view: the Sunday-less day grid,
// holiday and novelty lookups, and per-day event grouping.
package calendar

import (
	"sort"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/dates"
)

// WeekdayHeader matches the six displayed grid columns.
var WeekdayHeader = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// MonthBounds returns the first and last day of a month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// MonthGrid returns every displayed day for a month: from the Monday
// of the week containing the 1st through the end of the week
// containing the last day, with Sundays removed entirely. The grid is
// six columns wide; Sunday-only events are a known blind spot of the
// product, not of this function.
func MonthGrid(year int, month time.Month) []time.Time {
	monthStart, monthEnd := MonthBounds(year, month)

	gridStart := monthStart.AddDate(0, 0, -mondayOffset(monthStart))
	gridEnd := monthEnd.AddDate(0, 0, 6-mondayOffset(monthEnd))

	var days []time.Time
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd - 1
}

// CampaignsInMonth returns the distinct, sorted campaign names with
// at least one record overlapping the month. Distinct names, not
// per-day multiplicity: this feeds the calendar sidebar legend.
func CampaignsInMonth(records []domain.TrainingRecord, year int, month time.Month) []string {
	monthStart, monthEnd := MonthBounds(year, month)

	seen := make(map[string]struct{})
	for _, r := range records {
		if r.Campaign == "" {
			continue
		}
		if dates.Overlaps(r.StartDate, r.EndDate, monthStart, monthEnd) {
			seen[r.Campaign] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
