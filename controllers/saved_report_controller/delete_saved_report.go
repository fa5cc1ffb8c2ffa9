package saved_report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// DeleteSavedReport godoc
// @Summary Delete a saved report
// @Description Unknown ids are ignored
// @Tags Saved Reports
// @Produce json
// @Param id path string true "Saved report ID"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /saved-reports/{id} [delete]
func DeleteSavedReport(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		log.Printf("[saved-reports.delete] start id=%s", id)

		if err := d.DeleteReport(c.Request.Context(), id); err != nil {
			log.Printf("[saved-reports.delete] ERROR id=%s err=%v", id, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete report"))
			return
		}

		log.Printf("[saved-reports.delete] respond 200 id=%s", id)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Report deleted", nil))
	}
}
