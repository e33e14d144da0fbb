package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safetravel/internal/analysis"
	"github.com/shenikar/safetravel/internal/config"
	"github.com/shenikar/safetravel/internal/models"
	"github.com/shenikar/safetravel/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	safetyService service.SafetyService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(safetyService service.SafetyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		safetyService: safetyService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// errorStatus - ошибки входных данных дают 400, остальные 500
func errorStatus(err error) int {
	for _, target := range []error{
		models.ErrInvalidWindow,
		models.ErrInvalidRadius,
		models.ErrInvalidPoint,
		models.ErrInvalidSeverity,
		models.ErrInvalidSource,
		models.ErrInvalidKind,
		models.ErrMalformedRecord,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	status := errorStatus(err)
	if status == http.StatusBadRequest {
		log.WithError(err).Warn("Invalid request")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	log.WithError(err).Error(msg)
	c.JSON(status, gin.H{"error": "internal server error"})
}

// splitCategories разбирает список категорий через запятую
func splitCategories(raw string) []string {
	var out []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// @Summary Get a list of incidents
// @Description Get incidents filtered by time window, categories, severity and source. Newest first.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param window query string false "Time window: all, 24h, 7d, 30d" default(all)
// @Param categories query string false "Comma separated categories"
// @Param severity query string false "LOW, MEDIUM or HIGH"
// @Param source query string false "mock or community"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	window, err := analysis.ParseWindow(c.Query("window"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	severity, err := models.ParseSeverity(c.Query("severity"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	source, err := models.ParseSource(c.Query("source"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}

	incidents, err := h.safetyService.ListIncidents(c.Request.Context(), service.IncidentQuery{
		Window:     window,
		Categories: splitCategories(c.Query("categories")),
		Severity:   severity,
		Source:     source,
	})
	if err != nil {
		h.respondError(c, log, err, "Failed to list incidents from service")
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Submit a community report
// @Description Store a new community incident report. Returns 200 when a report with the same id already exists.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Community report"
// @Success 201 {object} IncidentResponse
// @Success 200 {object} IncidentResponse "Report already stored"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	added, err := h.safetyService.ReportIncident(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err, "Failed to store report in service")
		return
	}

	status := http.StatusCreated
	if !added {
		status = http.StatusOK
	}
	c.JSON(status, ModelToIncidentResponse(*model))
}

// @Summary Get recent community reports
// @Description Get the newest community reports
// @Tags Reports
// @Accept json
// @Produce json
// @Param limit query int false "Number of reports" default(6)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Router /reports/recent [get]
func (h *Handler) recentReports(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	reports := h.safetyService.RecentReports(c.Request.Context(), limit)
	c.JSON(http.StatusOK, ModelsToIncidentResponses(reports))
}

// @Summary Check location for dangerous incidents
// @Description Find HIGH severity incidents within the radius of the user, nearest first. Publishes an alert when any are found.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param location body AlertCheckRequest true "Location check request"
// @Success 200 {object} AlertCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/check [post]
func (h *Handler) checkAlerts(c *gin.Context) {
	var input AlertCheckRequest
	log := h.logger.WithField("method", "checkAlerts")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := analysis.ParseWindow(input.Window)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	radius := h.cfg.DefaultRadiusMeters
	if input.RadiusMeters != nil {
		radius = *input.RadiusMeters
	}

	result, err := h.safetyService.CheckProximity(c.Request.Context(), service.AlertQuery{
		UserID:       input.UserID,
		Center:       models.Point{Lat: *input.Latitude, Lon: *input.Longitude},
		RadiusMeters: radius,
		Window:       window,
		Categories:   input.Categories,
	})
	if err != nil {
		h.respondError(c, log, err, "Failed to check location in service")
		return
	}

	c.JSON(http.StatusOK, AlertCheckResponse{
		IsDangerous:  result.IsDangerous,
		RadiusMeters: radius,
		Count:        len(result.Incidents),
		Incidents:    NearbyToIncidentResponses(result.Incidents),
	})
}

// @Summary Get crime hotspots
// @Description Get areas ranked by the number of HIGH severity incidents. Areas without such incidents are omitted.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param window query string false "Time window: all, 24h, 7d, 30d" default(all)
// @Param source query string false "mock or community"
// @Param limit query int false "Maximum number of areas, 0 for all" default(0)
// @Success 200 {array} AreaStatsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots [get]
func (h *Handler) hotspots(c *gin.Context) {
	log := h.logger.WithField("method", "hotspots")

	window, err := analysis.ParseWindow(c.Query("window"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	source, err := models.ParseSource(c.Query("source"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	stats, err := h.safetyService.Hotspots(c.Request.Context(), service.HotspotQuery{
		Window: window,
		Source: source,
		Limit:  limit,
	})
	if err != nil {
		h.respondError(c, log, err, "Failed to compute hotspots in service")
		return
	}

	c.JSON(http.StatusOK, AreaStatsToResponses(stats))
}

// @Summary Get statistics for every area
// @Description Get incident totals for all areas, most dangerous first
// @Tags Analytics
// @Accept json
// @Produce json
// @Param window query string false "Time window: all, 24h, 7d, 30d" default(all)
// @Success 200 {array} AreaStatsResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas [get]
func (h *Handler) areaStats(c *gin.Context) {
	log := h.logger.WithField("method", "areaStats")

	window, err := analysis.ParseWindow(c.Query("window"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}

	stats, err := h.safetyService.AreaStats(c.Request.Context(), window)
	if err != nil {
		h.respondError(c, log, err, "Failed to compute area stats in service")
		return
	}

	c.JSON(http.StatusOK, AreaStatsToResponses(stats))
}

// @Summary Get quick statistics
// @Description Get incident totals and the safety score
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, QuickStatsToResponse(h.safetyService.QuickStats(c.Request.Context())))
}

// @Summary Get safe locations
// @Description Get police stations, help booths and safe zones. With lat and lon only locations within the radius are returned, nearest first.
// @Tags Safety
// @Accept json
// @Produce json
// @Param kind query string false "police, pink_booth or safe_zone"
// @Param lat query number false "Latitude of the center"
// @Param lon query number false "Longitude of the center"
// @Param radius_meters query number false "Search radius in meters"
// @Success 200 {array} SafeLocationResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /safe-locations [get]
func (h *Handler) safeLocations(c *gin.Context) {
	log := h.logger.WithField("method", "safeLocations")

	kind, err := models.ParseSafeLocationKind(c.Query("kind"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}

	q := service.SafeLocationQuery{Kind: kind, RadiusMeters: h.cfg.DefaultRadiusMeters}
	rawLat, rawLon := c.Query("lat"), c.Query("lon")
	if rawLat != "" || rawLon != "" {
		lat, errLat := strconv.ParseFloat(rawLat, 64)
		lon, errLon := strconv.ParseFloat(rawLon, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must both be numbers"})
			return
		}
		q.Center = &models.Point{Lat: lat, Lon: lon}
	}
	if raw := c.Query("radius_meters"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_meters"})
			return
		}
		q.RadiusMeters = radius
	}

	locations, err := h.safetyService.SafeLocations(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, log, err, "Failed to find safe locations in service")
		return
	}

	c.JSON(http.StatusOK, SafeLocationsToResponses(locations, q.Center != nil))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
