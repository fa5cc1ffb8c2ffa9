package saved_report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// SaveCustomReport godoc
// @Summary Save a report generator configuration
// @Description Saves the selected metrics with the dashboard's current date range
// @Tags Saved Reports
// @Accept json
// @Produce json
// @Param body body models.SaveCustomReportRequest true "Report"
// @Success 201 {object} models.ApiResponse{data=models.SavedReportResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /saved-reports/custom [post]
func SaveCustomReport(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SaveCustomReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[saved-reports.save-custom] bind error: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
			return
		}
		criteria, err := models.NewReportCriteria(req.Metrics)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		report, err := d.SaveCustomReport(c.Request.Context(), req.Name, criteria)
		if err != nil {
			respondSaveError(c, "saved-reports.save-custom", err)
			return
		}

		log.Printf("[saved-reports.save-custom] respond 201 id=%s metrics=%d", report.ID, len(criteria.Metrics))
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Report saved", report.ToResponse()))
	}
}
