package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/training-atlas/pkg/adapters"
	"github.com/de-tools/training-atlas/pkg/models/api"
	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/calendar"
	"github.com/de-tools/training-atlas/pkg/services/campaign"
	"github.com/de-tools/training-atlas/pkg/services/report"
	"github.com/de-tools/training-atlas/pkg/services/snapshot"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// SnapshotProvider hands out the record set currently on display.
type SnapshotProvider interface {
	Current() snapshot.Snapshot
}

// RefreshController triggers reloads and reports feed health.
type RefreshController interface {
	Refresh(ctx context.Context) error
	Status() snapshot.Status
}

type Handler struct {
	snapshots SnapshotProvider
	refresher RefreshController
}

func NewHandler(snapshots SnapshotProvider, refresher RefreshController) *Handler {
	return &Handler{snapshots: snapshots, refresher: refresher}
}

func (h *Handler) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		badRequest(w, "invalid year")
		return
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		badRequest(w, "invalid month")
		return
	}
	month := time.Month(monthNum)

	snap := h.snapshots.Current()
	grid := calendar.BuildMonth(year, month, snap.Records, snap.Holidays, snap.Novelties)

	days := make([]api.CalendarDay, 0, len(grid))
	for _, d := range grid {
		days = append(days, adapters.MapCalendarDayDomainToApi(d))
	}

	writeJSON(r.Context(), w, api.CalendarMonth{
		Year:            year,
		Month:           monthNum,
		WeekdayHeader:   calendar.WeekdayHeader,
		Days:            days,
		ActiveCampaigns: calendar.CampaignsInMonth(snap.Records, year, month),
	})
}

func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Current()
	query := r.URL.Query().Get("q")

	records := campaign.Search(snap.Records, query)
	summaries := campaign.AggregateByCampaign(records)

	resp := api.CampaignsResponse{
		Query:     query,
		Total:     len(records),
		Campaigns: len(summaries),
		Summaries: make([]api.CampaignSummary, 0, len(summaries)),
	}

	developers := make(map[string]struct{})
	clients := make(map[string]struct{})
	for _, rec := range records {
		if rec.Developer != "" {
			developers[rec.Developer] = struct{}{}
		}
		if rec.Client != "" {
			clients[rec.Client] = struct{}{}
		}
		switch domain.ClassifyStatus(rec.Status) {
		case domain.StatusCompleted:
			resp.Completed++
		case domain.StatusInProgress:
			resp.InProgress++
		case domain.StatusPending:
			resp.Pending++
		}
	}
	resp.Developers = len(developers)
	resp.Clients = len(clients)

	for _, s := range summaries {
		resp.Summaries = append(resp.Summaries, adapters.MapCampaignSummaryDomainToApi(s))
	}

	writeJSON(r.Context(), w, resp)
}

func (h *Handler) GetActiveCampaigns(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthQuery(r)
	if !ok {
		badRequest(w, "invalid year or month")
		return
	}

	snap := h.snapshots.Current()
	activities := campaign.ActiveInPeriod(snap.Records, year, month)

	resp := make([]api.CampaignActivity, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, adapters.MapCampaignActivityDomainToApi(a))
	}
	writeJSON(r.Context(), w, resp)
}

func (h *Handler) GetPeriodReport(w http.ResponseWriter, r *http.Request) {
	rng, records, ok := h.resolveReport(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, adapters.MapPeriodReportDomainToApi(report.Build(records, rng)))
}

func (h *Handler) ExportPeriodReport(w http.ResponseWriter, r *http.Request) {
	rng, records, ok := h.resolveReport(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("reporte_%s_%s.csv",
		chi.URLParam(r, "kind"), time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if err := report.WriteCSV(w, records, rng, time.Now().UTC()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write csv export")
	}
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Current()
	records := campaign.Search(snap.Records, r.URL.Query().Get("q"))

	resp := make([]api.TrainingRecord, 0, len(records))
	for _, rec := range records {
		resp = append(resp, adapters.MapTrainingRecordDomainToApi(rec))
	}
	writeJSON(r.Context(), w, resp)
}

func (h *Handler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	err := h.refresher.Refresh(r.Context())
	switch {
	case errors.Is(err, snapshot.ErrRefreshInFlight):
		http.Error(w, "refresh already in flight", http.StatusConflict)
	case err != nil:
		// Previous data stays on display; the next scheduled tick retries.
		http.Error(w, "feed reload failed", http.StatusBadGateway)
	default:
		w.WriteHeader(http.StatusAccepted)
	}
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, adapters.MapStatusDomainToApi(h.refresher.Status()))
}

func (h *Handler) resolveReport(w http.ResponseWriter, r *http.Request) (domain.PeriodRange, []domain.TrainingRecord, bool) {
	kind := domain.PeriodKind(chi.URLParam(r, "kind"))

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		badRequest(w, "invalid year")
		return domain.PeriodRange{}, nil, false
	}

	index := 0
	if raw := r.URL.Query().Get("index"); raw != "" {
		if index, err = strconv.Atoi(raw); err != nil {
			badRequest(w, "invalid index")
			return domain.PeriodRange{}, nil, false
		}
	}

	rng, err := report.Resolve(kind, year, index)
	if err != nil {
		badRequest(w, err.Error())
		return domain.PeriodRange{}, nil, false
	}

	snap := h.snapshots.Current()
	return rng, report.FilterByPeriod(snap.Records, rng), true
}

func yearMonthQuery(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}
