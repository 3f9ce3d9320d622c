package middleware

import (
	"context"
	"strings"

	"github.com/doorshop/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// Profiling tags request work with route labels so Pyroscope can split profiles per endpoint.
// Health and swagger requests are left unlabelled.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || strings.HasPrefix(path, "/swagger") {
			c.Next()
			return
		}

		telemetry.WithProfilingLabels(c.Request.Context(), profilingLabels(c), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

func profilingLabels(c *gin.Context) map[string]string {
	labels := map[string]string{telemetry.ProfilingLabelMethod: c.Request.Method}
	if route := c.FullPath(); route != "" {
		labels[telemetry.ProfilingLabelRoute] = route
		if controller := controllerFromRoute(route); controller != "" {
			labels[telemetry.ProfilingLabelController] = controller
		}
	}
	return labels
}

// controllerFromRoute returns the first resource segment:
// "/api/v1/products/:slug" -> "products"
func controllerFromRoute(route string) string {
	for part := range strings.SplitSeq(route, "/") {
		if part == "" || part == "api" || isVersionSegment(part) ||
			strings.HasPrefix(part, ":") || strings.HasPrefix(part, "*") {
			continue
		}
		return part
	}
	return ""
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || (s[0] != 'v' && s[0] != 'V') {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
