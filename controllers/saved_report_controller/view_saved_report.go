package saved_report_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// ViewSavedReport godoc
// @Summary Open a saved report
// @Description Restores the report's date range and switches to My Reports. Data loads in the background.
// @Tags Saved Reports
// @Produce json
// @Param id path string true "Saved report ID"
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /saved-reports/{id}/view [post]
func ViewSavedReport(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		log.Printf("[saved-reports.view] start id=%s", id)

		report, _, err := d.ViewReport(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrReportNotFound) {
				log.Printf("[saved-reports.view] not found id=%s", id)
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Saved report not found"))
				return
			}
			log.Printf("[saved-reports.view] ERROR id=%s err=%v", id, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to open report"))
			return
		}

		log.Printf("[saved-reports.view] respond 200 id=%s range=%s", report.ID, report.DateRange())
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Saved report opened", d.State()))
	}
}
