package analytics_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// GetProducts godoc
// @Summary Get the product performance table
// @Description Top products filtered by name and sorted by a column
// @Tags Analytics
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param search query string false "Filter by product name"
// @Param sort query string false "Sort column" Enums(name,revenue,orders,trend)
// @Param direction query string false "Sort direction" Enums(asc,desc)
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /analytics/products [get]
func GetProducts(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("[analytics.products] start rawQuery=%s", c.Request.URL.RawQuery)

		// ================================
		// Pagination
		// ================================
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 50 {
			limit = 10
		}
		offset := (page - 1) * limit

		// ================================
		// Filters
		// ================================
		query, err := services.NewProductQuery(strings.TrimSpace(c.Query("search")), c.Query("sort"), c.Query("direction"))
		if err != nil {
			log.Printf("[analytics.products] invalid query: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		snap := d.Snapshot()
		if snap == nil {
			log.Printf("[analytics.products] respond 503 no snapshot")
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics data is not available"))
			return
		}

		products := services.FilterProducts(snap.TopProducts, query)
		total := len(products)

		pageItems := []models.Product{}
		if offset < total {
			end := offset + limit
			if end > total {
				end = total
			}
			pageItems = products[offset:end]
		}

		log.Printf("[analytics.products] respond 200 total=%d page=%d sort=%s/%s", total, page, query.SortBy, query.Direction)
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", pageItems, models.NewPagination(page, limit, total)))
	}
}
