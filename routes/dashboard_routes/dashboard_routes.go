package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/controllers/dashboard_controller"
	"github.com/mattwilkerson1121/Asinsights/services"
)

func SetupDashboardRoutes(rg *gin.RouterGroup, d *services.Dashboard) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("/state", dashboard_controller.GetDashboardState(d))
	dashboard.PUT("/date-range", dashboard_controller.SetDateRange(d))
	dashboard.PUT("/view", dashboard_controller.SetView(d))
	dashboard.POST("/chat/toggle", dashboard_controller.ToggleChat(d))
}
