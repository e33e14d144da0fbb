package analysis

import (
	"math/rand"
	"testing"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByArea_Scenario(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", Area: "A", Severity: models.SeverityHigh},
		{ID: "2", Area: "B", Severity: models.SeverityLow},
		{ID: "3", Area: "A", Severity: models.SeverityMedium},
		{ID: "4", Area: "A", Severity: models.SeverityHigh},
	}

	stats := AggregateByArea(incidents)

	assert.Equal(t, map[string]AreaStats{
		"A": {Area: "A", TotalCount: 3, HighSeverityCount: 2},
		"B": {Area: "B", TotalCount: 1, HighSeverityCount: 0},
	}, stats)

	top := TopHighRisk(stats, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "A", top[0].Area)
}

func TestAggregateByArea_TotalsMatchInput(t *testing.T) {
	areas := []string{"Gomti Nagar", "Hazratganj", "Aliganj", "Indira Nagar", ""}
	severities := []models.Severity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityNone}
	rng := rand.New(rand.NewSource(3))

	incidents := make([]models.Incident, 400)
	for i := range incidents {
		incidents[i] = models.Incident{
			Area:     areas[rng.Intn(len(areas))],
			Severity: severities[rng.Intn(len(severities))],
		}
	}

	stats := AggregateByArea(incidents)

	for area, s := range stats {
		total, high := 0, 0
		for _, inc := range incidents {
			if inc.Area == area {
				total++
				if inc.Severity == models.SeverityHigh {
					high++
				}
			}
		}
		assert.Equal(t, total, s.TotalCount, area)
		assert.Equal(t, high, s.HighSeverityCount, area)
	}
}

func TestAggregateByArea_Empty(t *testing.T) {
	assert.Empty(t, AggregateByArea(nil))
}

func TestRankAreas_TieBreakByName(t *testing.T) {
	stats := map[string]AreaStats{
		"Hazratganj":  {Area: "Hazratganj", TotalCount: 4, HighSeverityCount: 2},
		"Aliganj":     {Area: "Aliganj", TotalCount: 9, HighSeverityCount: 2},
		"Aminabad":    {Area: "Aminabad", TotalCount: 1, HighSeverityCount: 0},
		"Gomti Nagar": {Area: "Gomti Nagar", TotalCount: 5, HighSeverityCount: 3},
	}

	ranked := RankAreas(stats)
	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Area
	}
	assert.Equal(t, []string{"Gomti Nagar", "Aliganj", "Hazratganj", "Aminabad"}, names)

	top := TopHighRisk(stats, 0)
	assert.Len(t, top, 3, "areas without high severity incidents are not high risk")
}
