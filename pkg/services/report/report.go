package report

import (
	"sort"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/dates"
)

// topN limits the campaign and developer rankings, as the dashboard
// shows at most ten rows per list.
const topN = 10

// FilterByPeriod keeps records whose interval overlaps the range.
func FilterByPeriod(records []domain.TrainingRecord, rng domain.PeriodRange) []domain.TrainingRecord {
	var kept []domain.TrainingRecord
	for _, r := range records {
		if dates.Overlaps(r.StartDate, r.EndDate, rng.Start, rng.End) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Build derives the full period report from an already-filtered record
// set. Callers filter via FilterByPeriod first.
func Build(records []domain.TrainingRecord, rng domain.PeriodRange) domain.PeriodReport {
	rep := domain.PeriodReport{Range: rng, Total: len(records)}

	campaigns := make(map[string]struct{})
	developers := make(map[string]struct{})
	for _, r := range records {
		switch domain.ClassifyStatus(r.Status) {
		case domain.StatusCompleted:
			rep.Completed++
		case domain.StatusInProgress:
			rep.InProgress++
		}
		if r.Campaign != "" {
			campaigns[r.Campaign] = struct{}{}
		}
		if r.Developer != "" {
			developers[r.Developer] = struct{}{}
		}
	}
	rep.Campaigns = len(campaigns)
	rep.Developers = len(developers)

	rep.TopCampaigns = rank(records,
		func(r domain.TrainingRecord) string { return r.Campaign },
		func(r domain.TrainingRecord) string { return r.Developer },
		topN)
	rep.TopDevelopers = rank(records,
		func(r domain.TrainingRecord) string { return r.Developer },
		func(r domain.TrainingRecord) string { return r.Campaign },
		topN)
	rep.Clients = rank(records,
		func(r domain.TrainingRecord) string { return r.Client },
		func(r domain.TrainingRecord) string { return r.Campaign },
		0)

	return rep
}

// rank counts records per key and, per key, the distinct related
// values. Results sort by count descending, name ascending; limit 0
// means unlimited.
func rank(
	records []domain.TrainingRecord,
	key func(domain.TrainingRecord) string,
	related func(domain.TrainingRecord) string,
	limit int,
) []domain.NameCount {
	counts := make(map[string]int)
	relatedSets := make(map[string]map[string]struct{})

	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		counts[k]++
		rel := related(r)
		if rel == "" {
			continue
		}
		if relatedSets[k] == nil {
			relatedSets[k] = make(map[string]struct{})
		}
		relatedSets[k][rel] = struct{}{}
	}

	ranked := make([]domain.NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, domain.NameCount{
			Name:    name,
			Count:   count,
			Related: len(relatedSets[name]),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
