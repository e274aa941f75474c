package calendar

import (
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/dates"
)

// HolidayOn returns the name of the holiday falling on day, if any.
// When the feed carries several holidays on the same date the first
// one in feed order wins; that tie-break is a product decision.
func HolidayOn(day time.Time, holidays []domain.HolidayRecord) (string, bool) {
	for _, h := range holidays {
		if h.Date == nil {
			continue
		}
		if dates.SameDay(*h.Date, day) {
			return h.Name, true
		}
	}
	return "", false
}

// NoveltiesOn returns every novelty whose range contains day,
// unfiltered: multiple developers out on the same day all show up.
func NoveltiesOn(day time.Time, novelties []domain.NoveltyRecord) []domain.NoveltyRecord {
	var active []domain.NoveltyRecord
	for _, n := range novelties {
		if dates.Within(day, n.StartDate, n.EndDate) {
			active = append(active, n)
		}
	}
	return active
}
