package v1

import (
	"time"
)

// CreateReportRequest DTO для сообщения пользователя об инциденте
// @Description DTO для сообщения пользователя об инциденте
type CreateReportRequest struct {
	ID          string   `json:"id,omitempty" validate:"omitempty,max=64"`
	User        string   `json:"user,omitempty" validate:"omitempty,max=64"`
	Category    string   `json:"category" validate:"required,min=2,max=64"`
	Area        string   `json:"area,omitempty" validate:"omitempty,max=128"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Urgency     int      `json:"urgency,omitempty" validate:"omitempty,min=1,max=5"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             string    `json:"id"`
	User           string    `json:"user,omitempty"`
	Category       string    `json:"category"`
	Area           string    `json:"area"`
	Severity       string    `json:"severity,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Verified       bool      `json:"verified"`
	Source         string    `json:"source"`
	ReportCount    int       `json:"report_count,omitempty"`
	Urgency        int       `json:"urgency,omitempty"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
}

// AlertCheckRequest DTO для проверки опасных инцидентов рядом с пользователем
// @Description DTO для проверки опасных инцидентов рядом с пользователем
type AlertCheckRequest struct {
	UserID       string   `json:"user_id" validate:"required,max=64"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters *float64 `json:"radius_meters,omitempty" validate:"omitempty,gte=0,lte=50000"`
	Window       string   `json:"window,omitempty" validate:"omitempty,oneof=all 24h 7d 30d day week month"`
	Categories   []string `json:"categories,omitempty" validate:"omitempty,dive,required"`
}

// AlertCheckResponse DTO для ответа на проверку местоположения
// @Description DTO для ответа на проверку местоположения
type AlertCheckResponse struct {
	IsDangerous  bool                `json:"is_dangerous"`
	RadiusMeters float64             `json:"radius_meters"`
	Count        int                 `json:"count"`
	Incidents    []*IncidentResponse `json:"incidents"`
}

// AreaStatsResponse DTO для статистики района
// @Description DTO для статистики района
type AreaStatsResponse struct {
	Area              string `json:"area"`
	TotalIncidents    int    `json:"total_incidents"`
	HighRiskIncidents int    `json:"high_risk_incidents"`
}

// StatsResponse DTO для ответа со сводной статистикой
// @Description DTO для ответа со сводной статистикой
type StatsResponse struct {
	TotalIncidents   int    `json:"total_incidents"`
	HighRiskCount    int    `json:"high_risk_count"`
	CommunityReports int    `json:"community_reports"`
	SafetyScore      int    `json:"safety_score"`
	SafetyRating     string `json:"safety_rating"`
}

// SafeLocationResponse DTO для безопасного места
// @Description DTO для безопасного места
type SafeLocationResponse struct {
	Name           string   `json:"name"`
	Kind           string   `json:"kind"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}
