package logseq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/pkg/calendar"
)

func TestName(t *testing.T) {
	day := calendar.NewDay(2024, time.September, 1)

	tests := []struct {
		unit calendar.Unit
		name string
		file string
	}{
		{day, "2024-09-01", "2024_09_01"},
		{day.Week(), "2024/W35", "2024___W35"},
		{calendar.NewDay(2024, time.December, 31).Week(), "2025/W01", "2025___W01"},
		{day.Month(), "2024/September", "2024___September"},
		{day.Year(), "2024", "2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, Name(tt.unit))
			assert.Equal(t, tt.file, FileName(tt.unit))
		})
	}
}

func TestParseDayFileName(t *testing.T) {
	d, err := ParseDayFileName("2024_02_29")
	require.NoError(t, err)
	assert.Equal(t, calendar.NewDay(2024, time.February, 29), d)

	for _, bad := range []string{"2024-02-29", "2024___W01", "notes", "2024_13_01"} {
		_, err := ParseDayFileName(bad)
		assert.Error(t, err, bad)
	}
}

func TestLinkEmbed(t *testing.T) {
	day := calendar.NewDay(2024, time.September, 23)
	assert.Equal(t, "[[2024/September]]", LinkTo(day.Month()))
	assert.Equal(t, "{{embed [[2024-09-23]]}}", EmbedOf(day))
	assert.Equal(t, "{{embed [[x]]}}", Embed(Link("x")))
}

func TestFilters(t *testing.T) {
	var f Filters
	assert.Equal(t, "{}", f.String())

	f = f.Push("week", false).Push("month", false)
	assert.Equal(t, `{"week" false, "month" false}`, f.String())

	g := f.Push("2024/W39", false).Push("WEEK", true)
	assert.Equal(t, `{"week" true, "month" false, "2024/w39" false}`, g.String())
	assert.Equal(t, 3, g.Len())

	// Push does not alias the receiver.
	assert.Equal(t, `{"week" false, "month" false}`, f.String())
}
