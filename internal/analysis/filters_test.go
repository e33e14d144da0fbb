package analysis

import (
	"testing"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterByCategories(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", Category: "Robbery"},
		{ID: "2", Category: "Theft"},
		{ID: "3", Category: "Assault"},
		{ID: "4", Category: "Robbery"},
	}

	assert.Equal(t, []string{"1", "2", "4"}, ids(FilterByCategories(incidents, []string{"Robbery", "Theft"})))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(FilterByCategories(incidents, nil)))
	assert.Empty(t, FilterByCategories(incidents, []string{"Burglary"}))
}

func TestFilterBySeverityAndSource(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", Severity: models.SeverityHigh, Source: models.SourceMock},
		{ID: "2", Severity: models.SeverityLow, Source: models.SourceMock},
		{ID: "3", Source: models.SourceCommunity},
		{ID: "4", Severity: models.SeverityHigh, Source: models.SourceMock},
	}

	assert.Equal(t, []string{"1", "4"}, ids(FilterBySeverity(incidents, models.SeverityHigh)))
	assert.Len(t, FilterBySeverity(incidents, models.SeverityNone), 4)
	assert.Equal(t, []string{"3"}, ids(FilterBySource(incidents, models.SourceCommunity)))
	assert.Len(t, FilterBySource(incidents, ""), 4)
}
