package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/nbp_rates_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":                   true,
	"/api/v1/currencies/stream": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog.
// Clients are anonymous, so the distinct id is the client IP.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := EventNameFromRoute(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if requestID, ok := GetRequestIDFromContext(c); ok {
			props["request_id"] = requestID
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(c.ClientIP(), eventName, props)
	}
}

// EventNameFromRoute turns a route template into an event name,
// e.g. GET "/api/v1/currencies/:code" -> "get_api_v1_currencies_code".
// An empty route (unmatched request) yields "".
func EventNameFromRoute(method, route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return ""
	}
	route = strings.ReplaceAll(route, ":", "")
	route = strings.ReplaceAll(route, "*", "")
	route = strings.ReplaceAll(route, "/", "_")
	return strings.ToLower(method) + "_" + route
}
