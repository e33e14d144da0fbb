package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/safetravel/internal/analysis"
	"github.com/shenikar/safetravel/internal/models"
	"github.com/shenikar/safetravel/internal/observability"
	"github.com/shenikar/safetravel/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	defaultRecentReports = 6
	anonymousUser        = "anonymous"
)

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	Append(ctx context.Context, incident models.Incident) (bool, error)
	All() []models.Incident
}

// IncidentQuery - параметры выборки инцидентов
type IncidentQuery struct {
	Window     analysis.Window
	Categories []string
	Severity   models.Severity
	Source     models.Source
}

// AlertQuery - проверка опасных инцидентов рядом с пользователем
type AlertQuery struct {
	UserID       string
	Center       models.Point
	RadiusMeters float64
	Window       analysis.Window
	Categories   []string
}

// AlertResult - результат проверки: опасные инциденты по возрастанию расстояния
type AlertResult struct {
	IsDangerous bool
	Incidents   []analysis.NearbyIncident
}

// HotspotQuery - параметры рейтинга районов
type HotspotQuery struct {
	Window analysis.Window
	Source models.Source
	Limit  int
}

// SafeLocationQuery - фильтр безопасных мест; Center == nil означает "без ограничения по радиусу"
type SafeLocationQuery struct {
	Kind         models.SafeLocationKind
	Center       *models.Point
	RadiusMeters float64
}

// SafetyService определяет контракт бизнес-логики
type SafetyService interface {
	ListIncidents(ctx context.Context, q IncidentQuery) ([]models.Incident, error)
	ReportIncident(ctx context.Context, incident *models.Incident) (bool, error)
	CheckProximity(ctx context.Context, q AlertQuery) (AlertResult, error)
	Hotspots(ctx context.Context, q HotspotQuery) ([]analysis.AreaStats, error)
	AreaStats(ctx context.Context, window analysis.Window) ([]analysis.AreaStats, error)
	QuickStats(ctx context.Context) analysis.QuickStats
	RecentReports(ctx context.Context, limit int) []models.Incident
	SafeLocations(ctx context.Context, q SafeLocationQuery) ([]analysis.NearbySafeLocation, error)
}

type safetyService struct {
	repo          IncidentRepository
	safeLocations []models.SafeLocation
	publisher     webhook.AlertPublisher
	clock         clockwork.Clock
	logger        *logrus.Logger
	metrics       *observability.Metrics
}

func NewSafetyService(
	repo IncidentRepository,
	safeLocations []models.SafeLocation,
	publisher webhook.AlertPublisher,
	clock clockwork.Clock,
	logger *logrus.Logger,
	metrics *observability.Metrics,
) SafetyService {
	return &safetyService{
		repo:          repo,
		safeLocations: safeLocations,
		publisher:     publisher,
		clock:         clock,
		logger:        logger,
		metrics:       metrics,
	}
}

// ListIncidents возвращает инциденты по фильтрам, новые первыми
func (s *safetyService) ListIncidents(ctx context.Context, q IncidentQuery) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "ListIncidents",
		"window":  q.Window,
	})

	incidents, err := analysis.FilterByWindow(s.repo.All(), q.Window, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	incidents = analysis.FilterByCategories(incidents, q.Categories)
	incidents = analysis.FilterBySeverity(incidents, q.Severity)
	incidents = analysis.FilterBySource(incidents, q.Source)
	sortNewestFirst(incidents)

	log.WithField("count", len(incidents)).Debug("Incidents listed")
	return incidents, nil
}

// ReportIncident сохраняет сообщение пользователя. Возвращает false, если id уже был сохранен.
func (s *safetyService) ReportIncident(ctx context.Context, incident *models.Incident) (bool, error) {
	incident.ID = strings.TrimSpace(incident.ID)
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	if strings.TrimSpace(incident.User) == "" {
		incident.User = anonymousUser
	}
	incident.CreatedAt = s.clock.Now()
	incident.Source = models.SourceCommunity
	incident.Verified = false

	log := s.logger.WithFields(logrus.Fields{
		"service":     "safety",
		"method":      "ReportIncident",
		"incident_id": incident.ID,
		"category":    incident.Category,
	})
	log.Info("Attempting to store a community report")

	if err := incident.Location().Validate(); err != nil {
		log.WithError(err).Warn("Rejected report with invalid location")
		return false, fmt.Errorf("service: invalid report location: %w", err)
	}

	added, err := s.repo.Append(ctx, *incident)
	if err != nil {
		log.WithError(err).Error("Failed to store community report")
		return false, fmt.Errorf("service: could not store report: %w", err)
	}
	if !added {
		log.Info("Report with this id already exists")
		return false, nil
	}

	log.Info("Community report stored successfully")
	return true, nil
}

// CheckProximity ищет опасные (HIGH) инциденты в радиусе и при находке публикует оповещение.
// Ошибка публикации только логируется.
func (s *safetyService) CheckProximity(ctx context.Context, q AlertQuery) (AlertResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "CheckProximity",
		"user_id": q.UserID,
		"radius":  q.RadiusMeters,
	})
	log.Info("Checking user location")

	now := s.clock.Now()
	incidents, err := analysis.FilterByWindow(s.repo.All(), q.Window, now)
	if err != nil {
		return AlertResult{}, fmt.Errorf("service: could not check location: %w", err)
	}
	incidents = analysis.FilterByCategories(incidents, q.Categories)
	incidents = analysis.FilterBySeverity(incidents, models.SeverityHigh)

	nearby, err := analysis.WithinRadius(incidents, q.Center, q.RadiusMeters)
	if err != nil {
		log.WithError(err).Warn("Invalid proximity query")
		return AlertResult{}, fmt.Errorf("service: could not check location: %w", err)
	}

	result := AlertResult{IsDangerous: len(nearby) > 0, Incidents: nearby}
	if !result.IsDangerous {
		s.metrics.ProximityChecks.WithLabelValues("clear").Inc()
		log.WithField("is_danger", false).Info("Location check completed")
		return result, nil
	}
	s.metrics.ProximityChecks.WithLabelValues("alert").Inc()
	log.WithFields(logrus.Fields{
		"is_danger": true,
		"count":     len(nearby),
	}).Info("Location check completed")

	event := webhook.AlertEvent{
		UserID:       q.UserID,
		Latitude:     q.Center.Lat,
		Longitude:    q.Center.Lon,
		RadiusMeters: q.RadiusMeters,
		Timestamp:    now,
		Incidents:    nearby,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.AlertsPublished.WithLabelValues("error").Inc()
		log.WithError(err).Error("Failed to publish alert event")
	} else {
		s.metrics.AlertsPublished.WithLabelValues("ok").Inc()
	}

	return result, nil
}

// Hotspots возвращает районы с опасными инцидентами, самые опасные первыми
func (s *safetyService) Hotspots(ctx context.Context, q HotspotQuery) ([]analysis.AreaStats, error) {
	incidents, err := analysis.FilterByWindow(s.repo.All(), q.Window, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("service: could not compute hotspots: %w", err)
	}
	incidents = analysis.FilterBySource(incidents, q.Source)
	return analysis.TopHighRisk(analysis.AggregateByArea(incidents), q.Limit), nil
}

// AreaStats возвращает статистику по всем районам
func (s *safetyService) AreaStats(ctx context.Context, window analysis.Window) ([]analysis.AreaStats, error) {
	incidents, err := analysis.FilterByWindow(s.repo.All(), window, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("service: could not compute area stats: %w", err)
	}
	return analysis.RankAreas(analysis.AggregateByArea(incidents)), nil
}

func (s *safetyService) QuickStats(ctx context.Context) analysis.QuickStats {
	return analysis.ComputeQuickStats(s.repo.All())
}

// RecentReports возвращает последние сообщения пользователей
func (s *safetyService) RecentReports(ctx context.Context, limit int) []models.Incident {
	if limit <= 0 {
		limit = defaultRecentReports
	}
	reports := analysis.FilterBySource(s.repo.All(), models.SourceCommunity)
	sortNewestFirst(reports)
	if len(reports) > limit {
		reports = reports[:limit]
	}
	return reports
}

// SafeLocations возвращает безопасные места указанного типа; с центром - только в радиусе, ближние первыми
func (s *safetyService) SafeLocations(ctx context.Context, q SafeLocationQuery) ([]analysis.NearbySafeLocation, error) {
	locations := make([]models.SafeLocation, 0, len(s.safeLocations))
	for _, loc := range s.safeLocations {
		if q.Kind == "" || loc.Kind == q.Kind {
			locations = append(locations, loc)
		}
	}

	if q.Center == nil {
		out := make([]analysis.NearbySafeLocation, len(locations))
		for i, loc := range locations {
			out[i] = analysis.NearbySafeLocation{SafeLocation: loc}
		}
		return out, nil
	}

	nearby, err := analysis.SafeLocationsWithin(locations, *q.Center, q.RadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("service: could not find safe locations: %w", err)
	}
	return nearby, nil
}

func sortNewestFirst(incidents []models.Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})
}
