package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_LegacyForm(t *testing.T) {
	got, ok := Parse("Date(2025,0,15)")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParse_LegacyAndISOAgree(t *testing.T) {
	legacy, ok := Parse("Date(2025,0,15)")
	require.True(t, ok)
	iso, ok := Parse("2025-01-15")
	require.True(t, ok)

	assert.True(t, legacy.Equal(iso))
	assert.True(t, SameDay(legacy, iso))
	assert.Equal(t, "15/1/2025", FormatDisplay(&legacy))
	assert.Equal(t, "15/1/2025", FormatDisplay(&iso))
}

func TestParse_ISOVariants(t *testing.T) {
	for _, raw := range []string{
		"2025-03-05",
		"2025-03-05T10:30:00Z",
		"2025-03-05T10:30:00",
	} {
		got, ok := Parse(raw)
		require.True(t, ok, raw)
		assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), got, raw)
	}
}

func TestParse_Failures(t *testing.T) {
	for _, raw := range []string{
		"",
		"no date here",
		"Date(2025,0)",
		"Date(a,b,c)",
		"15/01/2025",
	} {
		_, ok := Parse(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseOptional(t *testing.T) {
	assert.Nil(t, ParseOptional(""))
	assert.Nil(t, ParseOptional("garbage"))
	require.NotNil(t, ParseOptional("Date(2025,11,31)"))
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), *ParseOptional("Date(2025,11,31)"))
}

func TestFormatDisplay_Nil(t *testing.T) {
	assert.Equal(t, "", FormatDisplay(nil))
}
