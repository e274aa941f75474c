package adapters

import (
	"time"

	"github.com/de-tools/training-atlas/pkg/models/api"
	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/calendar"
	"github.com/de-tools/training-atlas/pkg/services/colors"
	"github.com/de-tools/training-atlas/pkg/services/dates"
	"github.com/de-tools/training-atlas/pkg/services/snapshot"
)

func MapTrainingRecordDomainToApi(r domain.TrainingRecord) api.TrainingRecord {
	return api.TrainingRecord{
		RequestDate:     dates.FormatDisplay(r.RequestDate),
		Coordinator:     r.Coordinator,
		Client:          r.Client,
		Segment:         r.Segment,
		Developer:       r.Developer,
		MenuSegment:     r.MenuSegment,
		DevelopmentType: r.DevelopmentType,
		Name:            r.Name,
		Quantity:        r.Quantity,
		MaterialDate:    dates.FormatDisplay(r.MaterialDate),
		StartDate:       dates.FormatDisplay(r.StartDate),
		EndDate:         dates.FormatDisplay(r.EndDate),
		Status:          r.Status,
		StatusColor:     colors.StatusColor(r.Status),
		Trainer:         r.Trainer,
		Observations:    r.Observations,
		Campaign:        r.Campaign,
	}
}

func MapNoveltyRecordDomainToApi(n domain.NoveltyRecord) api.NoveltyRecord {
	return api.NoveltyRecord{
		Developer: n.Developer,
		StartDate: dates.FormatDisplay(n.StartDate),
		EndDate:   dates.FormatDisplay(n.EndDate),
		Note:      n.Note,
		Color:     colors.ColorFor(n.Developer, colors.DeveloperPalette),
	}
}

func MapGroupedEventDomainToApi(day time.Time, e domain.GroupedEvent) api.CalendarEvent {
	isStart, isEnd := calendar.DayEdges(day, e.StartDate, e.EndDate)

	items := make([]api.EventItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, api.EventItem{
			DevelopmentType: item.DevelopmentType,
			Name:            item.Name,
			Segment:         item.Segment,
			Quantity:        item.Quantity,
			Status:          item.Status,
			StatusColor:     colors.StatusColor(item.Status),
			Observations:    item.Observations,
		})
	}

	color := colors.DefaultColor
	if e.Campaign != calendar.UnassignedCampaign {
		color = colors.ColorFor(e.Campaign, colors.CampaignPalette)
	}

	return api.CalendarEvent{
		Campaign:     e.Campaign,
		Color:        color,
		Coordinator:  e.Coordinator,
		Developer:    e.Developer,
		MaterialDate: dates.FormatDisplay(e.MaterialDate),
		StartDate:    dates.FormatDisplay(e.StartDate),
		EndDate:      dates.FormatDisplay(e.EndDate),
		IsStart:      isStart,
		IsEnd:        isEnd,
		Items:        items,
	}
}

func MapCalendarDayDomainToApi(d domain.CalendarDay) api.CalendarDay {
	events := make([]api.CalendarEvent, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, MapGroupedEventDomainToApi(d.Date, e))
	}

	novelties := make([]api.NoveltyRecord, 0, len(d.Novelties))
	for _, n := range d.Novelties {
		novelties = append(novelties, MapNoveltyRecordDomainToApi(n))
	}

	display := dates.FormatDisplay(&d.Date)
	return api.CalendarDay{
		Date:        d.Date.Format("2006-01-02"),
		Display:     display,
		InMonth:     d.InMonth,
		IsHoliday:   d.IsHoliday,
		HolidayName: d.HolidayName,
		Events:      events,
		Novelties:   novelties,
	}
}

func MapCampaignSummaryDomainToApi(s domain.CampaignSummary) api.CampaignSummary {
	return api.CampaignSummary{
		Campaign:     s.Campaign,
		Color:        colors.ColorFor(s.Campaign, colors.CampaignPalette),
		Total:        s.Total,
		Completed:    s.Completed,
		InProgress:   s.InProgress,
		Pending:      s.Pending,
		Developers:   s.Developers,
		Coordinators: s.Coordinators,
		Clients:      s.Clients,
	}
}

func MapCampaignActivityDomainToApi(a domain.CampaignActivity) api.CampaignActivity {
	return api.CampaignActivity{
		Campaign:   a.Campaign,
		Color:      colors.ColorFor(a.Campaign, colors.CampaignPalette),
		Count:      a.Count,
		Developers: a.Developers,
	}
}

func MapPeriodRangeDomainToApi(r domain.PeriodRange) api.PeriodRange {
	return api.PeriodRange{Start: r.Start, End: r.End, Label: r.Label}
}

func MapNameCountDomainToApi(n domain.NameCount) api.NameCount {
	return api.NameCount{Name: n.Name, Count: n.Count, Related: n.Related}
}

func MapPeriodReportDomainToApi(rep domain.PeriodReport) api.PeriodReport {
	out := api.PeriodReport{
		Range:         MapPeriodRangeDomainToApi(rep.Range),
		Total:         rep.Total,
		Completed:     rep.Completed,
		InProgress:    rep.InProgress,
		Campaigns:     rep.Campaigns,
		Developers:    rep.Developers,
		TopCampaigns:  make([]api.NameCount, 0, len(rep.TopCampaigns)),
		TopDevelopers: make([]api.NameCount, 0, len(rep.TopDevelopers)),
		Clients:       make([]api.NameCount, 0, len(rep.Clients)),
	}
	for _, c := range rep.TopCampaigns {
		out.TopCampaigns = append(out.TopCampaigns, MapNameCountDomainToApi(c))
	}
	for _, d := range rep.TopDevelopers {
		out.TopDevelopers = append(out.TopDevelopers, MapNameCountDomainToApi(d))
	}
	for _, c := range rep.Clients {
		out.Clients = append(out.Clients, MapNameCountDomainToApi(c))
	}
	return out
}

func MapStatusDomainToApi(s snapshot.Status) api.FeedStatus {
	return api.FeedStatus{
		FetchedAt:   s.FetchedAt,
		LastAttempt: s.LastAttempt,
		Records:     s.Records,
		Holidays:    s.Holidays,
		Novelties:   s.Novelties,
		EmptyFeed:   s.EmptyFeed,
		LastError:   s.LastError,
	}
}
