package saved_report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// GetSavedReports godoc
// @Summary List saved reports
// @Description Saved reports in the order they were saved
// @Tags Saved Reports
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.SavedReportResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /saved-reports [get]
func GetSavedReports(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := d.ListReports(c.Request.Context())
		if err != nil {
			log.Printf("[saved-reports.list] ERROR err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch saved reports"))
			return
		}

		out := make([]models.SavedReportResponse, 0, len(reports))
		for _, r := range reports {
			out = append(out, r.ToResponse())
		}

		log.Printf("[saved-reports.list] respond 200 count=%d", len(out))
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Saved reports retrieved successfully", out))
	}
}
