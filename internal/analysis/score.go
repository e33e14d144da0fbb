package analysis

import "github.com/shenikar/safetravel/internal/models"

const (
	maxSafetyScore     = 100
	penaltyPerHighRisk = 5
)

// SafetyScore снижает индекс на 5 пунктов за каждый опасный инцидент, не опускаясь ниже нуля
func SafetyScore(highCount int) int {
	return max(0, maxSafetyScore-highCount*penaltyPerHighRisk)
}

// SafetyRating переводит индекс в текстовую оценку
func SafetyRating(score int) string {
	switch {
	case score > 80:
		return "Excellent"
	case score > 60:
		return "Good"
	default:
		return "Moderate"
	}
}

// QuickStats - сводка для панели статистики
type QuickStats struct {
	TotalIncidents   int    `json:"total_incidents"`
	HighRiskCount    int    `json:"high_risk_count"`
	CommunityReports int    `json:"community_reports"`
	SafetyScore      int    `json:"safety_score"`
	SafetyRating     string `json:"safety_rating"`
}

// ComputeQuickStats считает сводку: сгенерированные инциденты и их опасные записи
// учитываются отдельно от сообщений пользователей
func ComputeQuickStats(incidents []models.Incident) QuickStats {
	var qs QuickStats
	for _, inc := range incidents {
		switch inc.Source {
		case models.SourceCommunity:
			qs.CommunityReports++
		default:
			qs.TotalIncidents++
			if inc.Severity == models.SeverityHigh {
				qs.HighRiskCount++
			}
		}
	}
	qs.SafetyScore = SafetyScore(qs.HighRiskCount)
	qs.SafetyRating = SafetyRating(qs.SafetyScore)
	return qs
}
