package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/turtacn/h5sign/internal/application/dto"
	"github.com/turtacn/h5sign/internal/infrastructure/monitoring"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
)

// RequestID resolves the request id from cf-ray, then X-Request-ID, else a new uuid.
// The id is echoed in X-Request-ID and stored in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderCFRay)
		if id == "" {
			id = c.GetHeader(constants.HeaderRequestID)
		}
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(constants.HeaderRequestID, id)
		c.Set(string(constants.ContextKeyRequestID), id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, id))
		c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(string(constants.ContextKeyRequestID))
}

// AccessLog logs one line per request. Handlers find a logger scoped to the
// matched route in the request context.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log
		if route := c.FullPath(); route != "" {
			reqLog = log.WithFields(logger.String("route", route))
		}
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLog))
		c.Next()
		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int64("latency_ms", time.Since(start).Milliseconds()),
			logger.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			reqLog.Warn(c.Request.Context(), "Request failed", fields...)
			return
		}
		reqLog.Info(c.Request.Context(), "Request processed", fields...)
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				log.Error(c.Request.Context(), "Panic recovered", err, logger.String("stack", string(debug.Stack())))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.ErrorResponse(errors.ErrInternal("internal server error"), monitoring.TraceID(c.Request.Context())))
			}
		}()
		c.Next()
	}
}
