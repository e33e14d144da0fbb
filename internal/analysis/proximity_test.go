package analysis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gomtiNagar = models.Point{Lat: 26.8465, Lon: 80.9462}

func TestWithinRadius_Scenario(t *testing.T) {
	// Один инцидент в центре, второй примерно в километре к северу
	incidents := []models.Incident{
		{ID: "far", Latitude: 26.8555, Longitude: 80.9462},
		{ID: "here", Latitude: 26.8465, Longitude: 80.9462},
	}

	nearby, err := WithinRadius(incidents, gomtiNagar, 500)

	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "here", nearby[0].ID)
	assert.Equal(t, 0.0, nearby[0].DistanceMeters)
}

func TestWithinRadius_SortedAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	incidents := make([]models.Incident, 300)
	for i := range incidents {
		incidents[i] = models.Incident{
			ID:        string(rune(i)),
			Latitude:  26.85 + rng.Float64()*0.1 - 0.05,
			Longitude: 80.94 + rng.Float64()*0.1 - 0.05,
		}
	}

	const radius = 2000.0
	nearby, err := WithinRadius(incidents, gomtiNagar, radius)
	require.NoError(t, err)
	require.NotEmpty(t, nearby)

	for i, n := range nearby {
		assert.LessOrEqual(t, n.DistanceMeters, radius)
		if i > 0 {
			assert.LessOrEqual(t, nearby[i-1].DistanceMeters, n.DistanceMeters)
		}
	}
}

func TestWithinRadius_StableTies(t *testing.T) {
	incidents := []models.Incident{
		{ID: "first", Latitude: 26.8475, Longitude: 80.9462},
		{ID: "second", Latitude: 26.8475, Longitude: 80.9462},
		{ID: "third", Latitude: 26.8465, Longitude: 80.9462},
	}

	nearby, err := WithinRadius(incidents, gomtiNagar, 1000)

	require.NoError(t, err)
	require.Len(t, nearby, 3)
	assert.Equal(t, "third", nearby[0].ID)
	assert.Equal(t, "first", nearby[1].ID)
	assert.Equal(t, "second", nearby[2].ID)
}

func TestWithinRadius_ZeroRadiusExactMatchOnly(t *testing.T) {
	incidents := []models.Incident{
		{ID: "exact", Latitude: gomtiNagar.Lat, Longitude: gomtiNagar.Lon},
		{ID: "close", Latitude: gomtiNagar.Lat + 0.00001, Longitude: gomtiNagar.Lon},
	}

	nearby, err := WithinRadius(incidents, gomtiNagar, 0)

	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "exact", nearby[0].ID)
}

func TestWithinRadius_EmptyInput(t *testing.T) {
	nearby, err := WithinRadius(nil, gomtiNagar, 500)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestWithinRadius_InvalidArguments(t *testing.T) {
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := WithinRadius(nil, gomtiNagar, r)
		assert.ErrorIs(t, err, models.ErrInvalidRadius)
	}

	_, err := WithinRadius(nil, models.Point{Lat: 91, Lon: 0}, 100)
	assert.ErrorIs(t, err, models.ErrInvalidPoint)
}

func TestSafeLocationsWithin(t *testing.T) {
	locations := []models.SafeLocation{
		{Name: "Help Center", Kind: models.KindSafeZone, Latitude: 26.8501, Longitude: 80.9448},
		{Name: "Police Station Gomti Nagar", Kind: models.KindPolice, Latitude: 26.8465, Longitude: 80.9462},
		{Name: "Police Outpost Jankipuram", Kind: models.KindPolice, Latitude: 26.8567, Longitude: 80.9423},
	}

	nearby, err := SafeLocationsWithin(locations, gomtiNagar, 500)

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Police Station Gomti Nagar", nearby[0].Name)
	assert.Equal(t, "Help Center", nearby[1].Name)
}
