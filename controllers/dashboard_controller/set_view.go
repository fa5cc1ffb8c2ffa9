package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// SetView godoc
// @Summary Switch the active view
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body models.SetViewRequest true "View (dashboard, my-reports, saved-reports)"
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Failure 400 {object} models.ApiResponse
// @Router /dashboard/view [put]
func SetView(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SetViewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
			return
		}
		view, err := models.ParseView(req.View)
		if err != nil {
			log.Printf("[dashboard.view] invalid view=%q", req.View)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid view"))
			return
		}

		d.SetView(view)
		log.Printf("[dashboard.view] respond 200 view=%s", view)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "View updated", d.State()))
	}
}
