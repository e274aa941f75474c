// Package sheets fetches the gviz tabular feed backing the dashboard.
// The endpoint returns JSONP; the JSON table is unwrapped and mapped
// positionally into domain records.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/de-tools/training-atlas/pkg/adapters"
	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

var jsonpPattern = regexp.MustCompile(`(?s)google\.visualization\.Query\.setResponse\((.*)\);?\s*$`)

type Settings struct {
	BaseURL        string
	SpreadsheetID  string
	RecordsSheet   string
	HolidaysSheet  string
	NoveltiesSheet string
	Timeout        time.Duration
}

type Client struct {
	httpClient *http.Client
	settings   Settings
}

func NewClient(settings Settings) *Client {
	timeout := settings.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		settings:   settings,
	}
}

// FetchRecords pulls the training sheet.
func (c *Client) FetchRecords(ctx context.Context) ([]domain.TrainingRecord, error) {
	table, err := c.fetchTable(ctx, c.settings.RecordsSheet)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TrainingRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		c.warnUnparsable(ctx, c.settings.RecordsSheet, row, adapters.TrainingDateColumns)
		records = append(records, adapters.MapRowToTrainingRecord(row))
	}
	return records, nil
}

// FetchHolidays pulls the holiday sheet.
func (c *Client) FetchHolidays(ctx context.Context) ([]domain.HolidayRecord, error) {
	table, err := c.fetchTable(ctx, c.settings.HolidaysSheet)
	if err != nil {
		return nil, err
	}

	holidays := make([]domain.HolidayRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		c.warnUnparsable(ctx, c.settings.HolidaysSheet, row, adapters.HolidayDateColumns)
		holidays = append(holidays, adapters.MapRowToHolidayRecord(row))
	}
	return holidays, nil
}

// FetchNovelties pulls the novelty sheet.
func (c *Client) FetchNovelties(ctx context.Context) ([]domain.NoveltyRecord, error) {
	table, err := c.fetchTable(ctx, c.settings.NoveltiesSheet)
	if err != nil {
		return nil, err
	}

	novelties := make([]domain.NoveltyRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		c.warnUnparsable(ctx, c.settings.NoveltiesSheet, row, adapters.NoveltyDateColumns)
		novelties = append(novelties, adapters.MapRowToNoveltyRecord(row))
	}
	return novelties, nil
}

func (c *Client) fetchTable(ctx context.Context, sheet string) (store.Table, error) {
	endpoint := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:json&sheet=%s",
		c.settings.BaseURL, c.settings.SpreadsheetID, url.QueryEscape(sheet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return store.Table{}, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return store.Table{}, fmt.Errorf("failed to fetch sheet %q: %w", sheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return store.Table{}, fmt.Errorf("sheet %q returned status %d", sheet, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return store.Table{}, fmt.Errorf("failed to read sheet %q response: %w", sheet, err)
	}

	m := jsonpPattern.FindSubmatch(body)
	if m == nil {
		return store.Table{}, fmt.Errorf("sheet %q response is not a gviz payload", sheet)
	}

	var decoded store.SheetResponse
	if err := json.Unmarshal(m[1], &decoded); err != nil {
		return store.Table{}, fmt.Errorf("failed to decode sheet %q table: %w", sheet, err)
	}

	return decoded.Table, nil
}

func (c *Client) warnUnparsable(ctx context.Context, sheet string, row store.Row, cols []int) {
	for _, raw := range adapters.UnparsableDates(row, cols) {
		zerolog.Ctx(ctx).Warn().
			Str("sheet", sheet).
			Str("value", raw).
			Msg("unparsable date cell, field left empty")
	}
}
