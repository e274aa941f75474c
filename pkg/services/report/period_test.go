package report

import (
	"testing"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestResolve_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		kind       domain.PeriodKind
		year, idx  int
		start, end time.Time
	}{
		{"monthly feb", domain.PeriodMonthly, 2025, 2, d(2025, time.February, 1), d(2025, time.February, 28)},
		{"monthly dec", domain.PeriodMonthly, 2025, 12, d(2025, time.December, 1), d(2025, time.December, 31)},
		{"monthly leap feb", domain.PeriodMonthly, 2024, 2, d(2024, time.February, 1), d(2024, time.February, 29)},
		{"bimonthly 1", domain.PeriodBimonthly, 2025, 1, d(2025, time.January, 1), d(2025, time.February, 28)},
		{"bimonthly 6", domain.PeriodBimonthly, 2025, 6, d(2025, time.November, 1), d(2025, time.December, 31)},
		{"quarterly 2", domain.PeriodQuarterly, 2025, 2, d(2025, time.April, 1), d(2025, time.June, 30)},
		{"quarterly 4", domain.PeriodQuarterly, 2025, 4, d(2025, time.October, 1), d(2025, time.December, 31)},
		{"semiannual 1", domain.PeriodSemiannual, 2025, 1, d(2025, time.January, 1), d(2025, time.June, 30)},
		{"semiannual 2", domain.PeriodSemiannual, 2025, 2, d(2025, time.July, 1), d(2025, time.December, 31)},
		{"annual", domain.PeriodAnnual, 2025, 0, d(2025, time.January, 1), d(2025, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := Resolve(tt.kind, tt.year, tt.idx)
			require.NoError(t, err)
			assert.Equal(t, tt.start, rng.Start)
			assert.Equal(t, tt.end, rng.End)
			assert.NotEmpty(t, rng.Label)
		})
	}
}

func TestResolve_Labels(t *testing.T) {
	rng, err := Resolve(domain.PeriodMonthly, 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "enero 2025", rng.Label)

	rng, err = Resolve(domain.PeriodQuarterly, 2025, 2)
	require.NoError(t, err)
	assert.Equal(t, "Q2 2025", rng.Label)

	rng, err = Resolve(domain.PeriodSemiannual, 2025, 2)
	require.NoError(t, err)
	assert.Equal(t, "Segundo Semestre 2025", rng.Label)

	rng, err = Resolve(domain.PeriodAnnual, 2025, 0)
	require.NoError(t, err)
	assert.Equal(t, "Año 2025", rng.Label)
}

func TestResolve_Rejections(t *testing.T) {
	cases := []struct {
		kind domain.PeriodKind
		idx  int
	}{
		{domain.PeriodMonthly, 0},
		{domain.PeriodMonthly, 13},
		{domain.PeriodBimonthly, 7},
		{domain.PeriodQuarterly, 5},
		{domain.PeriodSemiannual, 3},
		{domain.PeriodKind("weekly"), 1},
	}
	for _, c := range cases {
		_, err := Resolve(c.kind, 2025, c.idx)
		assert.Error(t, err, "%s/%d", c.kind, c.idx)
	}
}
