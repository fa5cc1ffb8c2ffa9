package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

type AdjustSnapshotResponse struct {
	Intent models.Intent    `json:"intent"`
	Data   *models.Snapshot `json:"data"`
}

// AdjustSnapshot godoc
// @Summary Preview the snapshot adjusted for a query
// @Description Classifies the query and returns the fetched snapshot with that intent's rule applied. Dashboard state is not changed.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body models.ViewInDashboardRequest true "Query"
// @Success 200 {object} models.ApiResponse{data=analytics_controller.AdjustSnapshotResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /analytics/adjust [post]
func AdjustSnapshot(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ViewInDashboardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
			return
		}

		intent, snap := d.PreviewAdjustment(req.Query)
		log.Printf("[analytics.adjust] respond 200 intent=%s", intent)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Adjusted snapshot generated", AdjustSnapshotResponse{
			Intent: intent,
			Data:   snap,
		}))
	}
}
