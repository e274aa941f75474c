package domain

import "time"

// EventItem is one record's slice of a grouped calendar event.
type EventItem struct {
	DevelopmentType string
	Name            string
	Segment         string
	Quantity        string
	Status          string
	Observations    string
}

// GroupedEvent collapses all records of one campaign active on a day
// into a single calendar entry. Coordinator, developer and dates come
// from the first record seen for the campaign.
type GroupedEvent struct {
	Campaign     string
	Coordinator  string
	Developer    string
	MaterialDate *time.Time
	StartDate    *time.Time
	EndDate      *time.Time
	Items        []EventItem
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date        time.Time
	InMonth     bool
	HolidayName string
	IsHoliday   bool
	Events      []GroupedEvent
	Novelties   []NoveltyRecord
}
