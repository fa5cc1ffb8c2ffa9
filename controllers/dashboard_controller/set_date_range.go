package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/config"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// SetDateRange godoc
// @Summary Change the date range
// @Description Starts fetching analytics for the range. Responds 202 with the loading state, or 200 once the fetch settles when wait=true.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body models.DateRange true "Date range"
// @Param wait query bool false "Wait for the fetch to settle"
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Success 202 {object} models.ApiResponse{data=models.DashboardState}
// @Failure 400 {object} models.ApiResponse
// @Failure 504 {object} models.ApiResponse
// @Router /dashboard/date-range [put]
func SetDateRange(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("[dashboard.date-range] start rawQuery=%s", c.Request.URL.RawQuery)

		var req models.DateRange
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[dashboard.date-range] bind error: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
			return
		}
		if err := req.Validate(); err != nil {
			log.Printf("[dashboard.date-range] validation error: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		done := d.SetDateRange(req)

		if c.Query("wait") != "true" {
			log.Printf("[dashboard.date-range] respond 202 range=%s", req)
			c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Date range updated, data is loading", d.State()))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()
		select {
		case <-done:
		case <-ctx.Done():
			log.Printf("[dashboard.date-range] ERROR timed out waiting range=%s", req)
			c.JSON(http.StatusGatewayTimeout, models.ErrorResponse(c, "Timed out waiting for analytics data"))
			return
		}

		state := d.State()
		log.Printf("[dashboard.date-range] respond 200 range=%s status=%s", req, state.Status)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Date range updated", state))
	}
}
