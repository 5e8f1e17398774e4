package httputil

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/pkg/logger"
)

// Error writes the uniform failure payload.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Recovery funnels panics into a 500. Outside production the stack is echoed
// back to ease debugging, mirroring the usual dev error handler behavior.
func Recovery(log logger.ZapLogger, appEnv string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", stack),
				)

				body := gin.H{"error": "Internal Server Error"}
				if appEnv != "production" {
					body["stack"] = string(stack)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
