package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per finished request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		log.Printf("[http] %s %s status=%d latency=%s ip=%s",
			c.Request.Method, route, c.Writer.Status(), time.Since(start).Round(time.Microsecond), c.ClientIP())
	}
}
