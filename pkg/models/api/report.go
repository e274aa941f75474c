package api

import "time"

type PeriodRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type NameCount struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Related int    `json:"related"`
}

type PeriodReport struct {
	Range         PeriodRange `json:"range"`
	Total         int         `json:"total"`
	Completed     int         `json:"completed"`
	InProgress    int         `json:"in_progress"`
	Campaigns     int         `json:"campaigns"`
	Developers    int         `json:"developers"`
	TopCampaigns  []NameCount `json:"top_campaigns"`
	TopDevelopers []NameCount `json:"top_developers"`
	Clients       []NameCount `json:"clients"`
}

// FeedStatus is the /status payload: the age and shape of the current
// snapshot plus the last reload outcome.
type FeedStatus struct {
	FetchedAt   time.Time `json:"fetched_at"`
	LastAttempt time.Time `json:"last_attempt"`
	Records     int       `json:"records"`
	Holidays    int       `json:"holidays"`
	Novelties   int       `json:"novelties"`
	EmptyFeed   bool      `json:"empty_feed"`
	LastError   string    `json:"last_error,omitempty"`
}
