package analysis

import (
	"testing"
	"time"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incidentsAt(now time.Time, ages ...time.Duration) []models.Incident {
	out := make([]models.Incident, len(ages))
	for i, age := range ages {
		out[i] = models.Incident{ID: string(rune('a' + i)), CreatedAt: now.Add(-age)}
	}
	return out
}

func ids(incidents []models.Incident) []string {
	out := make([]string, len(incidents))
	for i, inc := range incidents {
		out[i] = inc.ID
	}
	return out
}

func TestParseWindow(t *testing.T) {
	cases := map[string]Window{
		"":      WindowAll,
		"all":   WindowAll,
		"DAY":   WindowDay,
		"24h":   WindowDay,
		"week":  WindowWeek,
		"7d":    WindowWeek,
		"month": WindowMonth,
		"30d":   WindowMonth,
	}
	for in, want := range cases {
		got, err := ParseWindow(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseWindow("fortnight")
	assert.ErrorIs(t, err, models.ErrInvalidWindow)
}

func TestFilterByWindow(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	incidents := incidentsAt(now,
		time.Hour,       // a
		48*time.Hour,    // b
		24*time.Hour,    // c, ровно на границе дня
		10*24*time.Hour, // d
		31*24*time.Hour, // e
		6*24*time.Hour,  // f
		-1*time.Hour,    // g, из будущего
	)

	day, err := FilterByWindow(incidents, WindowDay, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "g"}, ids(day))

	week, err := FilterByWindow(incidents, WindowWeek, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "f", "g"}, ids(week))

	month, err := FilterByWindow(incidents, WindowMonth, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "f", "g"}, ids(month))

	all, err := FilterByWindow(incidents, WindowAll, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, ids(incidents), ids(all))
}

func TestFilterByWindow_InvalidWindow(t *testing.T) {
	_, err := FilterByWindow(nil, Window("year"), time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidWindow)
}

func TestFilterByWindow_DoesNotAliasInput(t *testing.T) {
	now := time.Now()
	incidents := incidentsAt(now, time.Minute)

	all, err := FilterByWindow(incidents, WindowAll, now)
	require.NoError(t, err)
	all[0].ID = "changed"

	assert.Equal(t, "a", incidents[0].ID)
}
