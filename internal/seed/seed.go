// Package seed генерирует демонстрационные данные: инциденты, сообщения пользователей
// и список безопасных мест.
package seed

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/safetravel/internal/models"
)

var (
	crimeAreas = []string{"Gomti Nagar", "Hazratganj", "Aliganj", "Indira Nagar", "Aminabad", "Jankipuram"}
	crimeTypes = []string{"Robbery", "Theft", "Snatching", "Assault", "Burglary", "Pickpocketing"}
	severities = []models.Severity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh}

	reportAreas  = crimeAreas[:5]
	reportTypes  = []string{"Suspicious activity", "Theft attempt", "Harassment", "Snatching"}
	reportPlaces = []string{"market", "park", "metro station", "shopping complex"}
)

const (
	centerLat = 26.85
	centerLon = 80.94

	crimeSpread  = 0.05
	reportSpread = 0.03
)

// Generator - генератор демонстрационных данных. Не потокобезопасен.
type Generator struct {
	rnd   *rand.Rand
	clock clockwork.Clock
	ids   func() string
}

// NewGenerator создает генератор; seed == 0 означает зерно от текущего времени
func NewGenerator(seed int64, clock clockwork.Clock) *Generator {
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		clock: clock,
		ids:   uuid.NewString,
	}
}

// Crimes возвращает n сгенерированных инцидентов с id "1".."n" за последние 30 дней
func (g *Generator) Crimes(n int) []models.Incident {
	now := g.clock.Now()
	out := make([]models.Incident, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Incident{
			ID:          strconv.Itoa(i + 1),
			Category:    pick(g.rnd, crimeTypes),
			Area:        pick(g.rnd, crimeAreas),
			Severity:    pick(g.rnd, severities),
			CreatedAt:   now.Add(-time.Duration(g.rnd.Intn(31)) * 24 * time.Hour),
			ReportCount: 1 + g.rnd.Intn(20),
			Latitude:    centerLat + g.offset(crimeSpread),
			Longitude:   centerLon + g.offset(crimeSpread),
			Source:      models.SourceMock,
		})
	}
	return out
}

// CommunityReports возвращает n сообщений пользователей за последние 72 часа
func (g *Generator) CommunityReports(n int) []models.Incident {
	now := g.clock.Now()
	out := make([]models.Incident, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Incident{
			ID:          g.ids(),
			User:        fmt.Sprintf("User_%d", 1000+g.rnd.Intn(9000)),
			Category:    pick(g.rnd, reportTypes),
			Area:        pick(g.rnd, reportAreas),
			Description: "Incident reported near " + pick(g.rnd, reportPlaces),
			CreatedAt:   now.Add(-time.Duration(1+g.rnd.Intn(72)) * time.Hour),
			Verified:    g.rnd.Intn(4) == 0,
			Latitude:    centerLat + g.offset(reportSpread),
			Longitude:   centerLon + g.offset(reportSpread),
			Source:      models.SourceCommunity,
		})
	}
	return out
}

// SafeLocations возвращает фиксированный список безопасных мест
func SafeLocations() []models.SafeLocation {
	return []models.SafeLocation{
		{Name: "Police Station Gomti Nagar", Kind: models.KindPolice, Latitude: 26.8465, Longitude: 80.9462},
		{Name: "Women Help Booth Hazratganj", Kind: models.KindPinkBooth, Latitude: 26.8512, Longitude: 80.9415},
		{Name: "Police Station Aliganj", Kind: models.KindPolice, Latitude: 26.8489, Longitude: 80.9387},
		{Name: "Safe Zone Indira Nagar", Kind: models.KindSafeZone, Latitude: 26.8534, Longitude: 80.9491},
		{Name: "Women Police Booth Aminabad", Kind: models.KindPinkBooth, Latitude: 26.8471, Longitude: 80.9356},
		{Name: "Police Outpost Jankipuram", Kind: models.KindPolice, Latitude: 26.8567, Longitude: 80.9423},
		{Name: "24/7 Help Center", Kind: models.KindSafeZone, Latitude: 26.8501, Longitude: 80.9448},
	}
}

// offset - равномерное смещение в [-spread, spread)
func (g *Generator) offset(spread float64) float64 {
	return (g.rnd.Float64()*2 - 1) * spread
}

func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.Intn(len(items))]
}
