package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// ToggleChat godoc
// @Summary Open or close the assistant sidebar
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Router /dashboard/chat/toggle [post]
func ToggleChat(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		open := d.ToggleChat()
		log.Printf("[dashboard.chat-toggle] respond 200 open=%v", open)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Chat toggled", d.State()))
	}
}
