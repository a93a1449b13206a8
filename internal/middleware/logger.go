package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one line per handled request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Infof("%s %s -> %d (%d ms)",
			c.Request.Method, path, c.Writer.Status(),
			time.Since(start).Milliseconds())
	}
}
