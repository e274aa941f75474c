package api

// TrainingRecord is the JSON form of one feed row. Dates are the
// display strings (D/M/YYYY), empty when absent.
type TrainingRecord struct {
	RequestDate     string `json:"request_date,omitempty"`
	Coordinator     string `json:"coordinator,omitempty"`
	Client          string `json:"client,omitempty"`
	Segment         string `json:"segment,omitempty"`
	Developer       string `json:"developer,omitempty"`
	MenuSegment     string `json:"menu_segment,omitempty"`
	DevelopmentType string `json:"development_type,omitempty"`
	Name            string `json:"name,omitempty"`
	Quantity        string `json:"quantity,omitempty"`
	MaterialDate    string `json:"material_date,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	Status          string `json:"status,omitempty"`
	StatusColor     string `json:"status_color,omitempty"`
	Trainer         string `json:"trainer,omitempty"`
	Observations    string `json:"observations,omitempty"`
	Campaign        string `json:"campaign,omitempty"`
}

type NoveltyRecord struct {
	Developer string `json:"developer"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Note      string `json:"note,omitempty"`
	Color     string `json:"color"`
}
