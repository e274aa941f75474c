package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/api"
	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/snapshot"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSnapshots struct {
	snap snapshot.Snapshot
}

func (s *stubSnapshots) Current() snapshot.Snapshot { return s.snap }

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockRefresher) Status() snapshot.Status {
	args := m.Called()
	return args.Get(0).(snapshot.Status)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newTestAPI(snap snapshot.Snapshot, refresher *mockRefresher) *WebAPI {
	logger := zerolog.New(zerolog.NewTestWriter(nil))
	return NewWebAPI(logger, Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Snapshots: &stubSnapshots{snap: snap},
			Refresher: refresher,
		},
	})
}

func testSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Seq:       1,
		FetchedAt: time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC),
		Records: []domain.TrainingRecord{
			{
				Campaign:  "Norte",
				Developer: "Ana",
				Client:    "ACME",
				Status:    "Completado",
				StartDate: dayPtr(2025, time.March, 3),
				EndDate:   dayPtr(2025, time.March, 7),
			},
			{
				Campaign:  "Sur",
				Developer: "Luis",
				Status:    "En Curso",
				StartDate: dayPtr(2025, time.March, 10),
				EndDate:   dayPtr(2025, time.April, 2),
			},
		},
		Holidays: []domain.HolidayRecord{
			{Date: dayPtr(2025, time.March, 24), Name: "Festivo"},
		},
		Novelties: []domain.NoveltyRecord{
			{Developer: "Ana", StartDate: dayPtr(2025, time.March, 4), EndDate: dayPtr(2025, time.March, 5), Note: "incapacidad"},
		},
	}
}

func TestWebAPI_CalendarMonth(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/2025/3", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var month api.CalendarMonth
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&month))
	assert.Equal(t, 2025, month.Year)
	assert.Equal(t, []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}, month.WeekdayHeader)
	assert.Equal(t, []string{"Norte", "Sur"}, month.ActiveCampaigns)

	byDate := map[string]api.CalendarDay{}
	for _, d := range month.Days {
		byDate[d.Date] = d
	}
	require.Contains(t, byDate, "2025-03-04")
	d4 := byDate["2025-03-04"]
	require.Len(t, d4.Events, 1)
	assert.Equal(t, "Norte", d4.Events[0].Campaign)
	require.Len(t, d4.Novelties, 1)
	assert.True(t, byDate["2025-03-24"].IsHoliday)
}

func TestWebAPI_CalendarMonth_BadInput(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	for _, path := range []string{"/api/v1/calendar/abc/3", "/api/v1/calendar/2025/13"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestWebAPI_Campaigns(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.CampaignsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Campaigns)
	assert.Equal(t, 1, resp.Completed)
	assert.Equal(t, 1, resp.InProgress)
	require.Len(t, resp.Summaries, 2)
	assert.Equal(t, "Norte", resp.Summaries[0].Campaign)
}

func TestWebAPI_CampaignsSearch(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns?q=luis", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	var resp api.CampaignsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Summaries, 1)
	assert.Equal(t, "Sur", resp.Summaries[0].Campaign)
}

func TestWebAPI_ActiveCampaigns(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/active?year=2025&month=3", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.CampaignActivity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	// Mar 10..31 contributes more grid days than Mar 3..7.
	assert.Equal(t, "Sur", resp[0].Campaign)
	assert.Greater(t, resp[0].Count, resp[1].Count)
}

func TestWebAPI_PeriodReport(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/monthly?year=2025&index=3", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rep api.PeriodReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rep))
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, "marzo 2025", rep.Range.Label)
}

func TestWebAPI_PeriodReport_BadKind(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly?year=2025&index=1", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebAPI_Export(t *testing.T) {
	webAPI := newTestAPI(testSnapshot(), new(mockRefresher))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/monthly/export?year=2025&index=3", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "\ufeff"))
	assert.Contains(t, string(body), "REPORTE marzo 2025")
}

func TestWebAPI_Refresh(t *testing.T) {
	refresher := new(mockRefresher)
	refresher.On("Refresh", mock.Anything).Return(nil).Once()

	webAPI := newTestAPI(testSnapshot(), refresher)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	refresher.AssertExpectations(t)
}

func TestWebAPI_Refresh_Conflict(t *testing.T) {
	refresher := new(mockRefresher)
	refresher.On("Refresh", mock.Anything).Return(snapshot.ErrRefreshInFlight).Once()

	webAPI := newTestAPI(testSnapshot(), refresher)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWebAPI_Status(t *testing.T) {
	refresher := new(mockRefresher)
	refresher.On("Status").Return(snapshot.Status{
		Records:   2,
		LastError: "",
	}).Once()

	webAPI := newTestAPI(testSnapshot(), refresher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status api.FeedStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, 2, status.Records)
	assert.Empty(t, status.LastError)
}
