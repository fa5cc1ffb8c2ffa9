package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// GetSnapshot godoc
// @Summary Get the analytics snapshot on screen
// @Description KPIs, revenue series, funnel, top products and traffic sources for the current date range
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.Snapshot}
// @Failure 500 {object} models.ApiResponse "Fetch failed"
// @Failure 503 {object} models.ApiResponse "Still loading"
// @Router /analytics/snapshot [get]
func GetSnapshot(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("[analytics.snapshot] start")

		state := d.State()
		switch state.Status {
		case models.StatusLoading:
			log.Printf("[analytics.snapshot] respond 503 loading range=%s", state.DateRange)
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics data is loading"))
			return
		case models.StatusError:
			log.Printf("[analytics.snapshot] respond 500 err=%s", state.Error)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, state.Error))
			return
		}

		log.Printf("[analytics.snapshot] respond 200 range=%s adjusted=%v", state.DateRange, state.Adjusted)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics snapshot retrieved successfully", state.Data))
	}
}
