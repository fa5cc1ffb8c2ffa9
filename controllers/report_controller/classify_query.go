package report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// ClassifyQuery godoc
// @Summary Classify an assistant query
// @Description Maps free text to an intent and, for report requests, suggested criteria
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body models.ClassifyQueryRequest true "Query"
// @Success 200 {object} models.ApiResponse{data=models.ClassifyQueryResponse}
// @Failure 400 {object} models.ApiResponse "Empty query"
// @Router /reports/classify [post]
func ClassifyQuery(c *gin.Context) {
	var req models.ClassifyQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	result, ok := services.Classify(req.Text)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query text is required"))
		return
	}

	log.Printf("[reports.classify] respond 200 intent=%s", result.Intent)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Query classified", models.ClassifyQueryResponse{
		Intent:   result.Intent,
		Criteria: result.Criteria,
	}))
}
