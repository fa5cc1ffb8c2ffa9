package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/controllers/analytics_controller"
	"github.com/mattwilkerson1121/Asinsights/services"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, d *services.Dashboard) {
	analytics := rg.Group("/analytics")

	analytics.GET("/snapshot", analytics_controller.GetSnapshot(d))
	analytics.POST("/adjust", analytics_controller.AdjustSnapshot(d))
	analytics.GET("/products", analytics_controller.GetProducts(d))
}
