package api

type EventItem struct {
	DevelopmentType string `json:"development_type,omitempty"`
	Name            string `json:"name,omitempty"`
	Segment         string `json:"segment,omitempty"`
	Quantity        string `json:"quantity,omitempty"`
	Status          string `json:"status,omitempty"`
	StatusColor     string `json:"status_color,omitempty"`
	Observations    string `json:"observations,omitempty"`
}

type CalendarEvent struct {
	Campaign     string      `json:"campaign"`
	Color        string      `json:"color"`
	Coordinator  string      `json:"coordinator,omitempty"`
	Developer    string      `json:"developer,omitempty"`
	MaterialDate string      `json:"material_date,omitempty"`
	StartDate    string      `json:"start_date,omitempty"`
	EndDate      string      `json:"end_date,omitempty"`
	IsStart      bool        `json:"is_start"`
	IsEnd        bool        `json:"is_end"`
	Items        []EventItem `json:"items"`
}

type CalendarDay struct {
	Date        string          `json:"date"`
	Display     string          `json:"display"`
	InMonth     bool            `json:"in_month"`
	IsHoliday   bool            `json:"is_holiday"`
	HolidayName string          `json:"holiday_name,omitempty"`
	Events      []CalendarEvent `json:"events"`
	Novelties   []NoveltyRecord `json:"novelties"`
}

type CalendarMonth struct {
	Year            int           `json:"year"`
	Month           int           `json:"month"`
	WeekdayHeader   []string      `json:"weekday_header"`
	Days            []CalendarDay `json:"days"`
	ActiveCampaigns []string      `json:"active_campaigns"`
}
