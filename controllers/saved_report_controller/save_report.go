package saved_report_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// SaveReport godoc
// @Summary Save the current report
// @Description Saves the given date range, or the dashboard's current one, under a name. Names need not be unique.
// @Tags Saved Reports
// @Accept json
// @Produce json
// @Param body body models.SaveReportRequest true "Report"
// @Success 201 {object} models.ApiResponse{data=models.SavedReportResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /saved-reports [post]
func SaveReport(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SaveReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[saved-reports.save] bind error: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
			return
		}
		if req.DateRange != nil {
			if err := req.DateRange.Validate(); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
				return
			}
		}

		report, err := d.SaveReport(c.Request.Context(), req.Name, req.DateRange)
		if err != nil {
			respondSaveError(c, "saved-reports.save", err)
			return
		}

		log.Printf("[saved-reports.save] respond 201 id=%s", report.ID)
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Report saved", report.ToResponse()))
	}
}

func respondSaveError(c *gin.Context, tag string, err error) {
	if errors.Is(err, services.ErrInvalidReportName) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Report name is required"))
		return
	}
	log.Printf("[%s] ERROR err=%v", tag, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save report"))
}
