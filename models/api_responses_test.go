package models

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	rate := &RateLimiter{Limit: 10, Remaining: 9}
	c.Set(RateLimiterContextKey, rate)

	ok := SuccessResponse(c, "done", 1)
	if ok.Error || ok.Data != 1 || ok.Rate != rate || ok.Meta != nil {
		t.Errorf("success = %+v", ok)
	}

	page := PaginatedResponse(c, "page", []int{1}, NewPagination(2, 2, 5))
	if page.Meta == nil || page.Meta.TotalPages != 3 || page.Rate != rate {
		t.Errorf("paginated = %+v", page)
	}

	fail := ErrorResponse(nil, "boom")
	if !fail.Error || fail.Data != nil || fail.Rate != nil {
		t.Errorf("error = %+v", fail)
	}
}

func TestNewPaginationZeroLimit(t *testing.T) {
	if p := NewPagination(1, 0, 5); p.TotalPages != 0 {
		t.Errorf("total pages = %d, want 0", p.TotalPages)
	}
}
