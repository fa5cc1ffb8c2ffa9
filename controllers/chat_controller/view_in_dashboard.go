package chat_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// ViewInDashboard godoc
// @Summary Show a chat answer in the dashboard
// @Description Switches to the dashboard view and, after a refresh delay, replaces the data on screen with the snapshot adjusted for the query
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body models.ViewInDashboardRequest true "Query"
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Failure 400 {object} models.ApiResponse
// @Router /chat/view-in-dashboard [post]
func ViewInDashboard(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ViewInDashboardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
			return
		}
		log.Printf("[chat.view-in-dashboard] start query=%q", req.Query)

		if _, err := d.ViewInDashboard(c.Request.Context(), req.Query); err != nil {
			if c.Request.Context().Err() != nil {
				log.Printf("[chat.view-in-dashboard] client went away: %v", err)
				return
			}
			log.Printf("[chat.view-in-dashboard] ERROR err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to refresh dashboard"))
			return
		}

		state := d.State()
		log.Printf("[chat.view-in-dashboard] respond 200 adjusted=%v", state.Adjusted)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard refreshed", state))
	}
}
