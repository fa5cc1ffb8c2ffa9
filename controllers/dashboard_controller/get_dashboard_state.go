package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// GetDashboardState godoc
// @Summary Get dashboard state
// @Description Returns fetch status, the data on screen, date range, active view and chat flag
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Router /dashboard/state [get]
func GetDashboardState(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := d.State()
		log.Printf("[dashboard.state] respond 200 status=%s view=%s range=%s", state.Status, state.View, state.DateRange)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard state retrieved successfully", state))
	}
}
