package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"memory-agent/pkg/response"
)

// Recovery turns a handler panic into a 500 response. The panic value and
// stack are only exposed when showDetails is set.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err := fmt.Errorf("panic: %v", rec)
			m.l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

			if m.showDetails {
				response.InternalErrorWithDetails(c, err, map[string]any{
					"details": err.Error(),
					"stack":   string(debug.Stack()),
				})
			} else {
				response.InternalError(c, err)
			}
			c.Abort()
		}()
		c.Next()
	}
}
