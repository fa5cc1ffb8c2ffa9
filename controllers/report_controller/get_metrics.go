package report_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
)

// GetMetrics godoc
// @Summary List selectable report metrics
// @Tags Reports
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.MetricOption}
// @Router /reports/metrics [get]
func GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Metrics retrieved successfully", models.AvailableMetrics))
}
