package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every endpoint answers with
type ApiResponse struct {
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Error   bool         `json:"error,omitempty"`
	Meta    *Pagination  `json:"meta,omitempty"`
	Rate    *RateLimiter `json:"rate_limit,omitempty"`
}

// Pagination describes one page of the product table
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"5"`
	TotalPages int `json:"total_pages" example:"1"`
}

func NewPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// RateLimiterContextKey is where the rate limiter middleware stores its info
const RateLimiterContextKey = "rateLimiter"

func newResponse(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{Message: message}
	if c == nil {
		return resp
	}
	if rate, exists := c.Get(RateLimiterContextKey); exists {
		resp.Rate, _ = rate.(*RateLimiter)
	}
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := newResponse(c, message)
	resp.Data = data
	return resp
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := SuccessResponse(c, message, data)
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := newResponse(c, message)
	resp.Error = true
	return resp
}
