package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/incidents", h.listIncidents)

	// Сообщения пользователей
	reports := api.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("/recent", h.recentReports)
	}

	// Маршрут для проверки местоположения
	api.POST("/alerts/check", h.checkAlerts)

	api.GET("/hotspots", h.hotspots)
	api.GET("/areas", h.areaStats)
	api.GET("/stats", h.getStats)
	api.GET("/safe-locations", h.safeLocations)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
