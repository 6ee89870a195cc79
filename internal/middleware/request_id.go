package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-event-creator/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags the request context (and so every log line) with an id,
// reusing the caller's header when present.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
