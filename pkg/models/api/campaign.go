package api

type CampaignSummary struct {
	Campaign     string   `json:"campaign"`
	Color        string   `json:"color"`
	Total        int      `json:"total"`
	Completed    int      `json:"completed"`
	InProgress   int      `json:"in_progress"`
	Pending      int      `json:"pending"`
	Developers   []string `json:"developers,omitempty"`
	Coordinators []string `json:"coordinators,omitempty"`
	Clients      []string `json:"clients,omitempty"`
}

type CampaignActivity struct {
	Campaign   string   `json:"campaign"`
	Color      string   `json:"color"`
	Count      int      `json:"count"`
	Developers []string `json:"developers,omitempty"`
}

// CampaignsResponse is the campaign-lookup view: summaries plus the
// overall stats header.
type CampaignsResponse struct {
	Query      string            `json:"query,omitempty"`
	Total      int               `json:"total"`
	Campaigns  int               `json:"campaigns"`
	Developers int               `json:"developers"`
	Clients    int               `json:"clients"`
	Completed  int               `json:"completed"`
	InProgress int               `json:"in_progress"`
	Pending    int               `json:"pending"`
	Summaries  []CampaignSummary `json:"summaries"`
}
