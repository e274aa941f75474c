// Package campaign aggregates flat training records into per-campaign
// summaries and month activity tallies.
package campaign

import (
	"sort"
	"strings"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/calendar"
	"github.com/de-tools/training-atlas/pkg/services/dates"
	"golang.org/x/exp/maps"
)

// AggregateByCampaign groups records by their non-empty campaign name.
// Summaries come back sorted lexicographically for stable presentation.
func AggregateByCampaign(records []domain.TrainingRecord) []domain.CampaignSummary {
	type accumulator struct {
		summary      domain.CampaignSummary
		developers   map[string]struct{}
		coordinators map[string]struct{}
		clients      map[string]struct{}
	}

	acc := make(map[string]*accumulator)
	for _, r := range records {
		if r.Campaign == "" {
			continue
		}

		a, ok := acc[r.Campaign]
		if !ok {
			a = &accumulator{
				summary:      domain.CampaignSummary{Campaign: r.Campaign},
				developers:   make(map[string]struct{}),
				coordinators: make(map[string]struct{}),
				clients:      make(map[string]struct{}),
			}
			acc[r.Campaign] = a
		}

		a.summary.Total++
		switch domain.ClassifyStatus(r.Status) {
		case domain.StatusCompleted:
			a.summary.Completed++
		case domain.StatusInProgress:
			a.summary.InProgress++
		case domain.StatusPending:
			a.summary.Pending++
		}

		if r.Developer != "" {
			a.developers[r.Developer] = struct{}{}
		}
		if r.Coordinator != "" {
			a.coordinators[r.Coordinator] = struct{}{}
		}
		if r.Client != "" {
			a.clients[r.Client] = struct{}{}
		}
	}

	names := maps.Keys(acc)
	sort.Strings(names)

	summaries := make([]domain.CampaignSummary, 0, len(names))
	for _, name := range names {
		a := acc[name]
		a.summary.Developers = sortedKeys(a.developers)
		a.summary.Coordinators = sortedKeys(a.coordinators)
		a.summary.Clients = sortedKeys(a.clients)
		summaries = append(summaries, a.summary)
	}
	return summaries
}

// ActiveInPeriod tallies campaign activity across the displayed days
// of a month. Every grid day a campaign is active adds one to its
// count, so long-running campaigns rank above short bursts. Sundays
// never contribute because the grid omits them.
func ActiveInPeriod(records []domain.TrainingRecord, year int, month time.Month) []domain.CampaignActivity {
	counts := make(map[string]int)
	developers := make(map[string]map[string]struct{})

	for _, day := range calendar.MonthGrid(year, month) {
		for _, r := range records {
			if r.Campaign == "" {
				continue
			}
			if !dates.Within(day, r.StartDate, r.EndDate) {
				continue
			}
			counts[r.Campaign]++
			if r.Developer != "" {
				if developers[r.Campaign] == nil {
					developers[r.Campaign] = make(map[string]struct{})
				}
				developers[r.Campaign][r.Developer] = struct{}{}
			}
		}
	}

	activities := make([]domain.CampaignActivity, 0, len(counts))
	for name, count := range counts {
		activities = append(activities, domain.CampaignActivity{
			Campaign:   name,
			Count:      count,
			Developers: sortedKeys(developers[name]),
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Count != activities[j].Count {
			return activities[i].Count > activities[j].Count
		}
		return activities[i].Campaign < activities[j].Campaign
	})
	return activities
}

// Search keeps records where any field contains term,
// case-insensitively. An empty term keeps everything.
func Search(records []domain.TrainingRecord, term string) []domain.TrainingRecord {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)

	var matched []domain.TrainingRecord
	for _, r := range records {
		if recordMatches(r, needle) {
			matched = append(matched, r)
		}
	}
	return matched
}

func recordMatches(r domain.TrainingRecord, needle string) bool {
	fields := []string{
		r.Coordinator, r.Client, r.Segment, r.Developer, r.MenuSegment,
		r.DevelopmentType, r.Name, r.Quantity, r.Status, r.Trainer,
		r.Observations, r.Campaign,
		dates.FormatDisplay(r.RequestDate), dates.FormatDisplay(r.MaterialDate),
		dates.FormatDisplay(r.StartDate), dates.FormatDisplay(r.EndDate),
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := maps.Keys(set)
	sort.Strings(keys)
	return keys
}
