// Package handlers implements the HTTP handlers of the h5sign API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/h5sign/internal/application/dto"
	"github.com/turtacn/h5sign/internal/infrastructure/monitoring"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.SuccessResponse(data, monitoring.TraceID(c.Request.Context())))
}

// respondError answers with the status carried by err; unexpected errors are logged.
func respondError(c *gin.Context, log logger.Logger, err error) {
	ctx := c.Request.Context()
	if errors.ShouldLogError(err) {
		logger.FromContext(ctx, log).Error(ctx, "Request failed", err, logger.String("path", c.FullPath()))
	}
	c.JSON(errors.StatusOf(err), dto.ErrorResponse(err, monitoring.TraceID(ctx)))
}
