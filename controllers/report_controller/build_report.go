package report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// BuildReport godoc
// @Summary Generate report rows
// @Description Builds rows for the selected metrics from the data on screen and hands the criteria to the report generator
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body models.BuildReportRequest true "Metrics"
// @Success 200 {object} models.ApiResponse{data=[]models.ReportRow}
// @Failure 400 {object} models.ApiResponse
// @Router /reports/build [post]
func BuildReport(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, criteria, ok := bindCriteria(c, "reports.build")
		if !ok {
			return
		}

		rows := d.GenerateReport(criteria)
		log.Printf("[reports.build] respond 200 metrics=%d rows=%d", len(criteria.Metrics), len(rows))
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Report generated", rows))
	}
}

// bindCriteria reads a BuildReportRequest and writes a 400 on failure
func bindCriteria(c *gin.Context, tag string) (models.BuildReportRequest, models.ReportCriteria, bool) {
	var req models.BuildReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[%s] bind error: %v", tag, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return req, models.ReportCriteria{}, false
	}
	criteria, err := models.NewReportCriteria(req.Metrics)
	if err != nil {
		log.Printf("[%s] invalid metrics: %v", tag, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return req, models.ReportCriteria{}, false
	}
	return req, criteria, true
}
