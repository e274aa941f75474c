// Package report resolves reporting periods and derives period
// reports from the record snapshot.
package report

import (
	"fmt"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
)

var monthNames = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var monthAbbrevs = []string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Resolve turns a period kind plus year and sub-period index into a
// concrete inclusive date range. Only the boundaries are load-bearing;
// the label is presentation.
func Resolve(kind domain.PeriodKind, year, index int) (domain.PeriodRange, error) {
	switch kind {
	case domain.PeriodMonthly:
		if index < 1 || index > 12 {
			return domain.PeriodRange{}, fmt.Errorf("monthly index out of range: %d", index)
		}
		start := monthStart(year, index)
		return domain.PeriodRange{
			Start: start,
			End:   endOfMonth(start),
			Label: fmt.Sprintf("%s %d", monthNames[index-1], year),
		}, nil

	case domain.PeriodBimonthly:
		if index < 1 || index > 6 {
			return domain.PeriodRange{}, fmt.Errorf("bimonthly index out of range: %d", index)
		}
		start := monthStart(year, (index-1)*2+1)
		end := endOfMonth(start.AddDate(0, 1, 0))
		return domain.PeriodRange{
			Start: start,
			End:   end,
			Label: fmt.Sprintf("%s - %s %d", monthAbbrevs[(index-1)*2], monthAbbrevs[(index-1)*2+1], year),
		}, nil

	case domain.PeriodQuarterly:
		if index < 1 || index > 4 {
			return domain.PeriodRange{}, fmt.Errorf("quarterly index out of range: %d", index)
		}
		start := monthStart(year, (index-1)*3+1)
		return domain.PeriodRange{
			Start: start,
			End:   endOfMonth(start.AddDate(0, 2, 0)),
			Label: fmt.Sprintf("Q%d %d", index, year),
		}, nil

	case domain.PeriodSemiannual:
		if index < 1 || index > 2 {
			return domain.PeriodRange{}, fmt.Errorf("semiannual index out of range: %d", index)
		}
		start := monthStart(year, (index-1)*6+1)
		half := "Primer"
		if index == 2 {
			half = "Segundo"
		}
		return domain.PeriodRange{
			Start: start,
			End:   endOfMonth(start.AddDate(0, 5, 0)),
			Label: fmt.Sprintf("%s Semestre %d", half, year),
		}, nil

	case domain.PeriodAnnual:
		start := monthStart(year, 1)
		return domain.PeriodRange{
			Start: start,
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
			Label: fmt.Sprintf("Año %d", year),
		}, nil

	default:
		return domain.PeriodRange{}, fmt.Errorf("unknown period kind: %q", kind)
	}
}

func monthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func endOfMonth(start time.Time) time.Time {
	return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
}
