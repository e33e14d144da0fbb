package analysis

import (
	"sort"

	"github.com/shenikar/safetravel/internal/models"
)

// AreaStats - агрегированная статистика по району
type AreaStats struct {
	Area              string `json:"area"`
	TotalCount        int    `json:"total_count"`
	HighSeverityCount int    `json:"high_severity_count"`
}

// AggregateByArea группирует инциденты по району.
// В результат попадают только районы, встретившиеся во входных данных.
func AggregateByArea(incidents []models.Incident) map[string]AreaStats {
	stats := make(map[string]AreaStats)
	for _, inc := range incidents {
		s := stats[inc.Area]
		s.Area = inc.Area
		s.TotalCount++
		if inc.Severity == models.SeverityHigh {
			s.HighSeverityCount++
		}
		stats[inc.Area] = s
	}
	return stats
}

// RankAreas сортирует районы по убыванию числа опасных инцидентов, при равенстве - по названию
func RankAreas(stats map[string]AreaStats) []AreaStats {
	ranked := make([]AreaStats, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].HighSeverityCount != ranked[j].HighSeverityCount {
			return ranked[i].HighSeverityCount > ranked[j].HighSeverityCount
		}
		return ranked[i].Area < ranked[j].Area
	})
	return ranked
}

// TopHighRisk возвращает до n районов с хотя бы одним опасным инцидентом в порядке RankAreas.
// n <= 0 означает "без ограничения".
func TopHighRisk(stats map[string]AreaStats, n int) []AreaStats {
	ranked := RankAreas(stats)
	out := make([]AreaStats, 0, len(ranked))
	for _, s := range ranked {
		if s.HighSeverityCount == 0 {
			break
		}
		out = append(out, s)
	}
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
