package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored by this package in Gin and request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// GetRequestIDFromContext retrieves the request id from the Gin context.
// It returns the id and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestIDVal, exists := c.Get(string(requestIDKey))
	if !exists {
		// check in the request context as well
		return GetRequestIDFromCtx(c.Request.Context())
	}

	requestID, ok := requestIDVal.(string)
	return requestID, ok
}

// GetRequestIDFromCtx retrieves the request id from a plain context.Context.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok && requestID != ""
}
