package domain

import "time"

// PeriodKind is a reporting granularity.
type PeriodKind string

const (
	PeriodMonthly    PeriodKind = "monthly"
	PeriodBimonthly  PeriodKind = "bimonthly"
	PeriodQuarterly  PeriodKind = "quarterly"
	PeriodSemiannual PeriodKind = "semiannual"
	PeriodAnnual     PeriodKind = "annual"
)

// PeriodRange is a concrete reporting window. Start and End are
// inclusive calendar days; Label is presentation only.
type PeriodRange struct {
	Start time.Time
	End   time.Time
	Label string
}

// NameCount pairs an entity with its record count in a period and the
// number of distinct related entities (developers for a campaign,
// campaigns for a developer or client).
type NameCount struct {
	Name    string
	Count   int
	Related int
}

// PeriodReport is the full derived report for one period.
type PeriodReport struct {
	Range         PeriodRange
	Total         int
	Completed     int
	InProgress    int
	Campaigns     int
	Developers    int
	TopCampaigns  []NameCount
	TopDevelopers []NameCount
	Clients       []NameCount
}
