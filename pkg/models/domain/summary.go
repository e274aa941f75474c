package domain

// CampaignSummary aggregates every record sharing one campaign name.
// The status buckets are disjoint and need not sum to Total: records
// classified StatusOther count only toward Total.
type CampaignSummary struct {
	Campaign     string
	Total        int
	Completed    int
	InProgress   int
	Pending      int
	Developers   []string
	Coordinators []string
	Clients      []string
}

// CampaignActivity tallies how often a campaign was active across the
// displayed days of a month. A campaign active on 20 grid days has
// Count 20, not 1.
type CampaignActivity struct {
	Campaign   string
	Count      int
	Developers []string
}
