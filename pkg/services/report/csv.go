package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/dates"
)

var csvHeader = []string{
	"Fecha Solicitud", "Coordinador", "Cliente", "Segmento",
	"Desarrollador", "Segmento Menu", "Desarrollo", "Nombre",
	"Cantidad", "Fecha Material", "Fecha Inicio", "Fecha Fin",
	"Estado", "Observaciones", "Campaña",
}

// WriteCSV dumps a filtered record set as the spreadsheet-compatible
// report export: UTF-8 BOM, a title and generation stamp, then one
// quoted row per record.
func WriteCSV(w io.Writer, records []domain.TrainingRecord, rng domain.PeriodRange, now time.Time) error {
	if _, err := w.Write([]byte("\ufeff")); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	rows := [][]string{
		{"REPORTE " + rng.Label},
		{"Generado el: " + now.Format("02/01/2006 15:04")},
		{},
		csvHeader,
	}
	for _, r := range records {
		rows = append(rows, []string{
			dates.FormatDisplay(r.RequestDate),
			r.Coordinator,
			r.Client,
			r.Segment,
			r.Developer,
			r.MenuSegment,
			r.DevelopmentType,
			r.Name,
			r.Quantity,
			dates.FormatDisplay(r.MaterialDate),
			dates.FormatDisplay(r.StartDate),
			dates.FormatDisplay(r.EndDate),
			r.Status,
			r.Observations,
			r.Campaign,
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
