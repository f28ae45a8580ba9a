package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-ID"

const RequestIdKey = "requestId"

// RequestIdMiddleware propagates the client's X-Request-ID or generates a UUIDv4 when it is missing.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIdHeader, requestId)
		c.Set(RequestIdKey, requestId)
		c.Next()
	}
}
