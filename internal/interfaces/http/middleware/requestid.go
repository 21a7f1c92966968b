package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/shared/id"
)

const RequestIDHeader = "X-Request-ID"

// RequestID attaches a short identifier to every request so log lines from
// different layers can be correlated. A caller-supplied ID is kept as-is.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			generated, err := id.GenerateWithPrefix("req_", 12)
			if err == nil {
				requestID = generated
			}
		}
		if requestID != "" {
			c.Set("request_id", requestID)
			c.Header(RequestIDHeader, requestID)
		}
		c.Next()
	}
}
