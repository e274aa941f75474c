package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestWithin_InclusiveBounds(t *testing.T) {
	start := dayPtr(2025, time.March, 1)
	end := dayPtr(2025, time.March, 5)

	for d := 1; d <= 5; d++ {
		assert.True(t, Within(day(2025, time.March, d), start, end), "day %d", d)
	}
	assert.False(t, Within(day(2025, time.February, 28), start, end))
	assert.False(t, Within(day(2025, time.March, 6), start, end))
}

func TestWithin_NilBounds(t *testing.T) {
	d := day(2025, time.March, 3)
	assert.False(t, Within(d, nil, dayPtr(2025, time.March, 5)))
	assert.False(t, Within(d, dayPtr(2025, time.March, 1), nil))
	assert.False(t, Within(d, nil, nil))
}

func TestWithin_IgnoresTimeOfDay(t *testing.T) {
	noon := time.Date(2025, time.March, 1, 12, 30, 0, 0, time.UTC)
	assert.True(t, Within(noon, dayPtr(2025, time.March, 1), dayPtr(2025, time.March, 1)))
}

func TestOverlaps(t *testing.T) {
	ps := day(2025, time.April, 1)
	pe := day(2025, time.April, 30)

	tests := []struct {
		name       string
		start, end *time.Time
		want       bool
	}{
		{"starts inside", dayPtr(2025, time.April, 20), dayPtr(2025, time.May, 10), true},
		{"ends inside", dayPtr(2025, time.March, 10), dayPtr(2025, time.April, 2), true},
		{"spans period", dayPtr(2025, time.January, 1), dayPtr(2025, time.December, 31), true},
		{"fully inside", dayPtr(2025, time.April, 10), dayPtr(2025, time.April, 12), true},
		{"touches start", dayPtr(2025, time.March, 1), dayPtr(2025, time.April, 1), true},
		{"touches end", dayPtr(2025, time.April, 30), dayPtr(2025, time.May, 30), true},
		{"before", dayPtr(2025, time.March, 1), dayPtr(2025, time.March, 31), false},
		{"after", dayPtr(2025, time.May, 1), dayPtr(2025, time.May, 31), false},
		{"nil start", nil, dayPtr(2025, time.April, 10), false},
		{"nil end", dayPtr(2025, time.April, 10), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start, tt.end, ps, pe))
		})
	}
}
