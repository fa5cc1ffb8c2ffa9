package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/controllers/report_controller"
	"github.com/mattwilkerson1121/Asinsights/controllers/saved_report_controller"
	"github.com/mattwilkerson1121/Asinsights/services"
)

func SetupReportRoutes(rg *gin.RouterGroup, d *services.Dashboard) {
	reports := rg.Group("/reports")

	reports.GET("/metrics", report_controller.GetMetrics)
	reports.POST("/classify", report_controller.ClassifyQuery)
	reports.POST("/build", report_controller.BuildReport(d))
	reports.POST("/export", report_controller.ExportReport(d))
}

func SetupSavedReportRoutes(rg *gin.RouterGroup, d *services.Dashboard) {
	saved := rg.Group("/saved-reports")

	saved.GET("", saved_report_controller.GetSavedReports(d))
	saved.POST("", saved_report_controller.SaveReport(d))
	saved.POST("/custom", saved_report_controller.SaveCustomReport(d))
	saved.DELETE("/:id", saved_report_controller.DeleteSavedReport(d))
	saved.POST("/:id/view", saved_report_controller.ViewSavedReport(d))
}

// SetupRoutes registers every dashboard API group on rg
func SetupRoutes(rg *gin.RouterGroup, d *services.Dashboard) {
	SetupDashboardRoutes(rg, d)
	SetupAnalyticsRoutes(rg, d)
	SetupChatRoutes(rg, d)
	SetupReportRoutes(rg, d)
	SetupSavedReportRoutes(rg, d)
}
