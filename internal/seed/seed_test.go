package seed

import (
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/safetravel/internal/analysis"
	"github.com/shenikar/safetravel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func TestCrimes(t *testing.T) {
	g := NewGenerator(42, clockwork.NewFakeClockAt(testNow))

	crimes := g.Crimes(50)

	require.Len(t, crimes, 50)
	for i, c := range crimes {
		assert.Equal(t, strconv.Itoa(i+1), c.ID)
		assert.Equal(t, models.SourceMock, c.Source)
		assert.Contains(t, crimeAreas, c.Area)
		assert.Contains(t, crimeTypes, c.Category)
		assert.Contains(t, severities, c.Severity)
		assert.InDelta(t, centerLat, c.Latitude, crimeSpread+1e-9)
		assert.InDelta(t, centerLon, c.Longitude, crimeSpread+1e-9)
		assert.GreaterOrEqual(t, c.ReportCount, 1)
		assert.LessOrEqual(t, c.ReportCount, 20)
		assert.False(t, c.CreatedAt.After(testNow))
		assert.False(t, c.CreatedAt.Before(testNow.Add(-30*24*time.Hour)))
	}
}

func TestCrimes_Deterministic(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)

	a := NewGenerator(7, clock).Crimes(10)
	b := NewGenerator(7, clock).Crimes(10)

	assert.Equal(t, a, b)
}

func TestCommunityReports(t *testing.T) {
	g := NewGenerator(42, clockwork.NewFakeClockAt(testNow))

	reports := g.CommunityReports(15)

	require.Len(t, reports, 15)
	ids := make(map[string]struct{})
	for _, r := range reports {
		ids[r.ID] = struct{}{}
		assert.Equal(t, models.SourceCommunity, r.Source)
		assert.Contains(t, reportAreas, r.Area)
		assert.Contains(t, reportTypes, r.Category)
		assert.Regexp(t, `^User_\d{4}$`, r.User)
		assert.Regexp(t, `^Incident reported near `, r.Description)
		assert.InDelta(t, centerLat, r.Latitude, reportSpread+1e-9)
		assert.InDelta(t, centerLon, r.Longitude, reportSpread+1e-9)
		assert.False(t, r.CreatedAt.After(testNow.Add(-time.Hour)))
		assert.False(t, r.CreatedAt.Before(testNow.Add(-72*time.Hour)))
	}
	assert.Len(t, ids, 15)
}

func TestSafeLocations(t *testing.T) {
	locations := SafeLocations()
	require.Len(t, locations, 7)

	// Подготовка: Gomti Nagar Police Station
	center := models.Point{Lat: 26.8465, Lon: 80.9462}

	// Действие
	nearby, err := analysis.SafeLocationsWithin(locations, center, 500)

	// Проверки
	require.NoError(t, err)
	require.NotEmpty(t, nearby)
	assert.Equal(t, "Police Station Gomti Nagar", nearby[0].Name)
	assert.Zero(t, nearby[0].DistanceMeters)
}
