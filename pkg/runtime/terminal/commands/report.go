package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/report"
	"github.com/de-tools/training-atlas/pkg/services/snapshot"

	"github.com/spf13/cobra"
)

// Renderer turns a built period report into console output.
type Renderer interface {
	Handle(report *domain.PeriodReport) error
}

type ReportCmd struct {
	kind   string
	year   int
	index  int
	format string
	feed   snapshot.Feed
	plain  Renderer
	table  Renderer
}

func NewReportCmd(feed snapshot.Feed, plain, table Renderer) *cobra.Command {
	rc := &ReportCmd{feed: feed, plain: plain, table: table}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a period report from the live feed",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.kind, "kind", "monthly", "Period kind (monthly, bimonthly, quarterly, semiannual, annual)")
	cmd.Flags().IntVar(&rc.year, "year", time.Now().Year(), "Report year")
	cmd.Flags().IntVar(&rc.index, "index", 0, "Period index within the year (month number, quarter number, ...)")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format (table, plain)")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	built, err := buildReport(ctx, rc.feed, domain.PeriodKind(rc.kind), rc.year, rc.index)
	if err != nil {
		return err
	}

	switch rc.format {
	case "table":
		return rc.table.Handle(built)
	case "plain":
		return rc.plain.Handle(built)
	default:
		return fmt.Errorf("unsupported format %q, expected table or plain", rc.format)
	}
}

func buildReport(
	ctx context.Context,
	feed snapshot.Feed,
	kind domain.PeriodKind,
	year, index int,
) (*domain.PeriodReport, error) {
	rng, err := report.Resolve(kind, year, index)
	if err != nil {
		return nil, err
	}

	records, err := feed.FetchRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	built := report.Build(report.FilterByPeriod(records, rng), rng)
	return &built, nil
}
