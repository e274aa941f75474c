package calendar

import (
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/dates"
)

// UnassignedCampaign labels events whose record carries no campaign.
const UnassignedCampaign = "Sin campaña"

// EventsOn returns every record active on day.
func EventsOn(day time.Time, records []domain.TrainingRecord) []domain.TrainingRecord {
	var active []domain.TrainingRecord
	for _, r := range records {
		if dates.Within(day, r.StartDate, r.EndDate) {
			active = append(active, r)
		}
	}
	return active
}

// GroupByCampaign collapses a day's records into one event per
// campaign. The group keeps the first record's coordinator, developer
// and dates; every record contributes an item. Insertion order is
// preserved so the grid stays stable between renders.
func GroupByCampaign(events []domain.TrainingRecord) []domain.GroupedEvent {
	index := make(map[string]int)
	var grouped []domain.GroupedEvent

	for _, e := range events {
		campaign := e.Campaign
		if campaign == "" {
			campaign = UnassignedCampaign
		}

		i, ok := index[campaign]
		if !ok {
			i = len(grouped)
			index[campaign] = i
			grouped = append(grouped, domain.GroupedEvent{
				Campaign:     campaign,
				Coordinator:  e.Coordinator,
				Developer:    e.Developer,
				MaterialDate: e.MaterialDate,
				StartDate:    e.StartDate,
				EndDate:      e.EndDate,
			})
		}

		grouped[i].Items = append(grouped[i].Items, domain.EventItem{
			DevelopmentType: e.DevelopmentType,
			Name:            e.Name,
			Segment:         e.Segment,
			Quantity:        e.Quantity,
			Status:          e.Status,
			Observations:    e.Observations,
		})
	}

	return grouped
}

// DayEdges reports whether day is the first or last day of an event's
// range, for drawing range-edge markers.
func DayEdges(day time.Time, start, end *time.Time) (isStart, isEnd bool) {
	if start == nil || end == nil {
		return false, false
	}
	return dates.SameDay(*start, day), dates.SameDay(*end, day)
}

// BuildMonth assembles the full grid for one month from a snapshot's
// records, holidays and novelties.
func BuildMonth(
	year int,
	month time.Month,
	records []domain.TrainingRecord,
	holidays []domain.HolidayRecord,
	novelties []domain.NoveltyRecord,
) []domain.CalendarDay {
	var out []domain.CalendarDay
	for _, day := range MonthGrid(year, month) {
		holidayName, isHoliday := HolidayOn(day, holidays)
		out = append(out, domain.CalendarDay{
			Date:        day,
			InMonth:     day.Month() == month && day.Year() == year,
			HolidayName: holidayName,
			IsHoliday:   isHoliday,
			Events:      GroupByCampaign(EventsOn(day, records)),
			Novelties:   NoveltiesOn(day, novelties),
		})
	}
	return out
}
