package adapters

import (
	"fmt"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/models/store"
	"github.com/de-tools/training-atlas/pkg/services/dates"
)

// Column positions per sheet. Upstream reordering is a silent
// corruption risk the feed owner has to manage; we map positionally.
const (
	colRequestDate = iota
	colCoordinator
	colClient
	colSegment
	colDeveloper
	colMenuSegment
	colDevelopmentType
	colName
	colQuantity
	colMaterialDate
	colStartDate
	colEndDate
	colStatus
	colTrainer
	colObservations
	colCampaign
)

const (
	colHolidayDate = 3
	colHolidayName = 4
)

const (
	colNoveltyDeveloper = iota
	colNoveltyStart
	colNoveltyEnd
	colNoveltyNote
)

func cellString(row store.Row, idx int) string {
	if idx >= len(row.Cells) || row.Cells[idx] == nil || row.Cells[idx].Value == nil {
		return ""
	}
	return fmt.Sprint(row.Cells[idx].Value)
}

func MapRowToTrainingRecord(row store.Row) domain.TrainingRecord {
	return domain.TrainingRecord{
		RequestDate:     dates.ParseOptional(cellString(row, colRequestDate)),
		Coordinator:     cellString(row, colCoordinator),
		Client:          cellString(row, colClient),
		Segment:         cellString(row, colSegment),
		Developer:       cellString(row, colDeveloper),
		MenuSegment:     cellString(row, colMenuSegment),
		DevelopmentType: cellString(row, colDevelopmentType),
		Name:            cellString(row, colName),
		Quantity:        cellString(row, colQuantity),
		MaterialDate:    dates.ParseOptional(cellString(row, colMaterialDate)),
		StartDate:       dates.ParseOptional(cellString(row, colStartDate)),
		EndDate:         dates.ParseOptional(cellString(row, colEndDate)),
		Status:          cellString(row, colStatus),
		Trainer:         cellString(row, colTrainer),
		Observations:    cellString(row, colObservations),
		Campaign:        cellString(row, colCampaign),
	}
}

func MapRowToHolidayRecord(row store.Row) domain.HolidayRecord {
	return domain.HolidayRecord{
		Date: dates.ParseOptional(cellString(row, colHolidayDate)),
		Name: cellString(row, colHolidayName),
	}
}

func MapRowToNoveltyRecord(row store.Row) domain.NoveltyRecord {
	return domain.NoveltyRecord{
		Developer: cellString(row, colNoveltyDeveloper),
		StartDate: dates.ParseOptional(cellString(row, colNoveltyStart)),
		EndDate:   dates.ParseOptional(cellString(row, colNoveltyEnd)),
		Note:      cellString(row, colNoveltyNote),
	}
}

// Date columns per sheet, exported so the feed client can warn about
// non-empty cells that failed to parse.
var (
	TrainingDateColumns = []int{colRequestDate, colMaterialDate, colStartDate, colEndDate}
	HolidayDateColumns  = []int{colHolidayDate}
	NoveltyDateColumns  = []int{colNoveltyStart, colNoveltyEnd}
)

// UnparsableDates returns raw values of date cells that are non-empty
// yet unrecognized. Such cells become nil dates; the caller logs them
// as recoverable warnings.
func UnparsableDates(row store.Row, cols []int) []string {
	var bad []string
	for _, idx := range cols {
		raw := cellString(row, idx)
		if raw == "" {
			continue
		}
		if _, ok := dates.Parse(raw); !ok {
			bad = append(bad, raw)
		}
	}
	return bad
}
