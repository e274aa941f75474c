package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/de-tools/training-atlas/pkg/services/report"
	"github.com/de-tools/training-atlas/pkg/services/snapshot"

	"github.com/spf13/cobra"
)

type ExportCmd struct {
	kind   string
	year   int
	index  int
	out    string
	feed   snapshot.Feed
	output io.Writer
}

func NewExportCmd(feed snapshot.Feed, output io.Writer) *cobra.Command {
	ec := &ExportCmd{feed: feed, output: output}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a period report as CSV",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.kind, "kind", "monthly", "Period kind (monthly, bimonthly, quarterly, semiannual, annual)")
	cmd.Flags().IntVar(&ec.year, "year", time.Now().Year(), "Report year")
	cmd.Flags().IntVar(&ec.index, "index", 0, "Period index within the year (month number, quarter number, ...)")
	cmd.Flags().StringVar(&ec.out, "out", "", "Destination file (defaults to stdout)")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	rng, err := report.Resolve(domain.PeriodKind(ec.kind), ec.year, ec.index)
	if err != nil {
		return err
	}

	records, err := ec.feed.FetchRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch records: %w", err)
	}

	out := ec.output
	if ec.out != "" {
		f, err := os.Create(ec.out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", ec.out, err)
		}
		defer f.Close()
		out = f
	}

	return report.WriteCSV(out, report.FilterByPeriod(records, rng), rng, time.Now())
}
