package domain

import "time"

// TrainingRecord is one row of the training sheet. String fields use
// "" where the feed had no cell; date fields are parsed once at the
// adapter boundary and are nil when absent or unparseable. A record
// with a nil StartDate or EndDate is never active on any day.
type TrainingRecord struct {
	RequestDate     *time.Time
	Coordinator     string
	Client          string
	Segment         string
	Developer       string
	MenuSegment     string
	DevelopmentType string
	Name            string
	Quantity        string
	MaterialDate    *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	Status          string
	Trainer         string
	Observations    string
	Campaign        string
}

// HolidayRecord marks a single calendar day.
type HolidayRecord struct {
	Date *time.Time
	Name string
}

// NoveltyRecord is a developer-scoped annotation (leave, incident)
// active over a date range.
type NoveltyRecord struct {
	Developer string
	StartDate *time.Time
	EndDate   *time.Time
	Note      string
}
