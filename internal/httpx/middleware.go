// Package httpx carries the gin middleware for the local return listener.
package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is echoed back on every response so a redirect can be
// matched to its log line.
const HeaderRequestID = "X-Request-ID"

const ridKey = "httpx.rid"

// RequestID honors an inbound correlation id and mints one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ridKey, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

// Logger tags each line with the owning subsystem, e.g. [return] for the
// checkout return listener. The provider's signal rides in the query
// string, so the full request URI is logged, not just the path.
func Logger(tag string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		uri := c.Request.URL.RequestURI()
		c.Next()
		log.Printf("[%s] rid=%s %s %s status=%d dur=%s",
			tag, c.GetString(ridKey), c.Request.Method, uri, c.Writer.Status(), time.Since(start))
	}
}
