package analysis

import (
	"testing"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSafetyScore(t *testing.T) {
	assert.Equal(t, 100, SafetyScore(0))
	assert.Equal(t, 65, SafetyScore(7))
	assert.Equal(t, 0, SafetyScore(20))
	assert.Equal(t, 0, SafetyScore(35))
}

func TestSafetyRating(t *testing.T) {
	assert.Equal(t, "Excellent", SafetyRating(85))
	assert.Equal(t, "Good", SafetyRating(80))
	assert.Equal(t, "Good", SafetyRating(65))
	assert.Equal(t, "Moderate", SafetyRating(60))
	assert.Equal(t, "Moderate", SafetyRating(0))
}

func TestComputeQuickStats(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", Source: models.SourceMock, Severity: models.SeverityHigh},
		{ID: "2", Source: models.SourceMock, Severity: models.SeverityLow},
		{ID: "3", Source: models.SourceMock, Severity: models.SeverityHigh},
		{ID: "4", Source: models.SourceCommunity},
	}

	qs := ComputeQuickStats(incidents)

	assert.Equal(t, QuickStats{
		TotalIncidents:   3,
		HighRiskCount:    2,
		CommunityReports: 1,
		SafetyScore:      90,
		SafetyRating:     "Excellent",
	}, qs)
}
