package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/training-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth    int
	CountWidth   int
	RelatedWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:    40,
		CountWidth:   14,
		RelatedWidth: 14,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.PeriodReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, count interface{}, related interface{}) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*v |",
				c.config.NameWidth, name,
				c.config.CountWidth, count,
				c.config.RelatedWidth, related)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.CountWidth+2),
				strings.Repeat("-", c.config.RelatedWidth+2))
		},
	}

	tmpl := `
REPORTE {{.Range.Label}}

Periodo: {{.Range.Start.Format "2006-01-02"}} a {{.Range.End.Format "2006-01-02"}}
Total: {{.Total}}  Completadas: {{.Completed}}  En curso: {{.InProgress}}
Campañas: {{.Campaigns}}  Desarrolladores: {{.Developers}}

=== Campañas principales ===
{{separator}}
{{formatRow "Campaña" "Capacitaciones" "Desarrolladores"}}
{{separator}}
{{range .TopCampaigns}}{{formatRow .Name .Count .Related}}
{{end}}{{separator}}

=== Desarrolladores principales ===
{{separator}}
{{formatRow "Desarrollador" "Capacitaciones" "Campañas"}}
{{separator}}
{{range .TopDevelopers}}{{formatRow .Name .Count .Related}}
{{end}}{{separator}}

=== Clientes ===
{{separator}}
{{formatRow "Cliente" "Capacitaciones" "Campañas"}}
{{separator}}
{{range .Clients}}{{formatRow .Name .Count .Related}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
