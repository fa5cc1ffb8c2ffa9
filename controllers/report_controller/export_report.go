package report_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// ExportReport godoc
// @Summary Download a report
// @Description Exports the rows for the selected metrics as CSV or PDF
// @Tags Reports
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param body body models.BuildReportRequest true "Metrics and format (csv, pdf)"
// @Success 200 "Report file"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /reports/export [post]
func ExportReport(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, criteria, ok := bindCriteria(c, "reports.export")
		if !ok {
			return
		}
		format, err := services.ParseExportFormat(req.Format)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		rows := d.BuildReport(criteria)
		dateRange := d.DateRange()
		now := time.Now()

		var body []byte
		switch format {
		case services.ExportPDF:
			buf, err := services.ExportReportPDF("Custom Report", dateRange, rows, now)
			if err != nil {
				log.Printf("[reports.export] ERROR pdf err=%v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export report"))
				return
			}
			body = buf.Bytes()
		default:
			body, err = services.ExportReportCSV(rows)
			if err != nil {
				log.Printf("[reports.export] ERROR csv err=%v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export report"))
				return
			}
		}

		filename := fmt.Sprintf("report-%s-%s.%s", dateRange.Start, dateRange.End, format)
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Header("Content-Length", fmt.Sprintf("%d", len(body)))
		c.Data(http.StatusOK, format.ContentType(), body)

		log.Printf("[reports.export] respond 200 format=%s rows=%d bytes=%d", format, len(rows), len(body))
	}
}
