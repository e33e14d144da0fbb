package v1

import (
	"github.com/shenikar/safetravel/internal/analysis"
	"github.com/shenikar/safetravel/internal/models"
)

// DTOToIncidentModel преобразует сообщение пользователя в доменную модель
func DTOToIncidentModel(dto CreateReportRequest) *models.Incident {
	return &models.Incident{
		ID:          dto.ID,
		User:        dto.User,
		Category:    dto.Category,
		Area:        dto.Area,
		Description: dto.Description,
		Urgency:     dto.Urgency,
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		User:        model.User,
		Category:    model.Category,
		Area:        model.Area,
		Severity:    string(model.Severity),
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Verified:    model.Verified,
		Source:      string(model.Source),
		ReportCount: model.ReportCount,
		Urgency:     model.Urgency,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// NearbyToIncidentResponses добавляет к DTO расстояние до пользователя
func NearbyToIncidentResponses(nearby []analysis.NearbyIncident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(nearby))
	for i, n := range nearby {
		resp := ModelToIncidentResponse(n.Incident)
		d := n.DistanceMeters
		resp.DistanceMeters = &d
		responses[i] = resp
	}
	return responses
}

func AreaStatsToResponses(stats []analysis.AreaStats) []AreaStatsResponse {
	responses := make([]AreaStatsResponse, len(stats))
	for i, s := range stats {
		responses[i] = AreaStatsResponse{
			Area:              s.Area,
			TotalIncidents:    s.TotalCount,
			HighRiskIncidents: s.HighSeverityCount,
		}
	}
	return responses
}

func QuickStatsToResponse(qs analysis.QuickStats) StatsResponse {
	return StatsResponse{
		TotalIncidents:   qs.TotalIncidents,
		HighRiskCount:    qs.HighRiskCount,
		CommunityReports: qs.CommunityReports,
		SafetyScore:      qs.SafetyScore,
		SafetyRating:     qs.SafetyRating,
	}
}

// SafeLocationsToResponses преобразует безопасные места; расстояние заполняется, только если был задан центр
func SafeLocationsToResponses(locations []analysis.NearbySafeLocation, withDistance bool) []SafeLocationResponse {
	responses := make([]SafeLocationResponse, len(locations))
	for i, l := range locations {
		responses[i] = SafeLocationResponse{
			Name:      l.Name,
			Kind:      string(l.Kind),
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		}
		if withDistance {
			d := l.DistanceMeters
			responses[i].DistanceMeters = &d
		}
	}
	return responses
}
