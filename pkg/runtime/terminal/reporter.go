package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/training-atlas/pkg/models/domain"
)

// Reporter outputs period reports to the console in a plain text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.PeriodReport) error {
	tmpl := `
REPORTE {{.Range.Label}}
Periodo: {{.Range.Start.Format "2006-01-02"}} a {{.Range.End.Format "2006-01-02"}}
Total capacitaciones: {{.Total}}
Completadas: {{.Completed}}
En curso: {{.InProgress}}
Campañas: {{.Campaigns}}
Desarrolladores: {{.Developers}}

=== Campañas principales ===
{{range .TopCampaigns}}
- {{.Name}}: {{.Count}} ({{.Related}} desarrolladores)
{{end}}
=== Desarrolladores principales ===
{{range .TopDevelopers}}
- {{.Name}}: {{.Count}} ({{.Related}} campañas)
{{end}}
=== Clientes ===
{{range .Clients}}
- {{.Name}}: {{.Count}} ({{.Related}} campañas)
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
