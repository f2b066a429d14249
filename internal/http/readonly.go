package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// readOnlyAllowedPrefixes lists non-GET routes that stay open in read-only
// mode. Report exports write files, not tracker data.
var readOnlyAllowedPrefixes = []string{
	"/api/reports/",
}

// ReadOnlyMiddleware rejects requests that would change tracker data.
type ReadOnlyMiddleware struct {
	enabled bool
}

func NewReadOnlyMiddleware(enabled bool) *ReadOnlyMiddleware {
	return &ReadOnlyMiddleware{enabled: enabled}
}

func (m *ReadOnlyMiddleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a gin middleware answering 403 to blocked writes.
func (m *ReadOnlyMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled || isSafeMethod(c.Request.Method) || m.isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Error: "tracker is running in read-only mode",
		})
	}
}

func (m *ReadOnlyMiddleware) isAllowedPath(path string) bool {
	for _, prefix := range readOnlyAllowedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
