package middleware

import (
	"net/http"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached with c.Error as a StandardError
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		stdErr, ok := err.(*errors.StandardError)
		if !ok {
			stdErr = errors.NewInternalError("internal server error", nil)
		}

		status := stdErr.HTTPStatus()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("error_code", stdErr.Code),
			zap.String("route", c.FullPath()),
			zap.String("request_id", GetRequestID(c)),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Warn("Request rejected", append(fields, zap.String("message", stdErr.Message))...)
		}
		c.JSON(status, stdErr)
	}
}

// RecoveryHandler turns a panic into a 500 StandardError
func RecoveryHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errors.NewInternalError("internal server error", nil))
	})
}
