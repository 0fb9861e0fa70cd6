package api

import (
	"net/http" // HTTP status codes

	"task_manager/internal/middleware" // Caller identity
	"task_manager/internal/service"    // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// StatisticsHandler returns overall statistics to admins and own statistics to everyone else
func StatisticsHandler(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		result, err := stats.ForIdentity(c.Request.Context(), identity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"statistics": result})
	}
}

// PriorityStatsHandler returns task counts per priority
func PriorityStatsHandler(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := stats.ByPriority(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"priority_stats": result})
	}
}

// StatusStatsHandler returns task counts per status
func StatusStatsHandler(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := stats.ByStatus(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status_stats": result})
	}
}
