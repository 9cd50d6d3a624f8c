package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/h5sign/internal/application/dto"
	"github.com/turtacn/h5sign/internal/application/service"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

// CommandHandler serves /jComExchange.
// CommandHandler 处理口令解析请求。
type CommandHandler struct {
	service service.CommandAppService
	log     logger.Logger
}

// NewCommandHandler creates a CommandHandler.
func NewCommandHandler(svc service.CommandAppService, log logger.Logger) *CommandHandler {
	return &CommandHandler{service: svc, log: log.WithComponent("command_handler")}
}

// Exchange returns the signed jComExchange URL for the share code. GET reads
// the "command" query parameter, POST the "command" JSON field.
func (h *CommandHandler) Exchange(c *gin.Context) {
	var req dto.CommandRequest
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		respondError(c, h.log, errors.ErrInvalidRequest("请求参数非法").WithCause(err))
		return
	}
	if !utils.ValidateNotEmpty(req.Command) {
		respondError(c, h.log, errors.ErrInvalidRequest("command不能为空"))
		return
	}

	link, err := h.service.Exchange(c.Request.Context(), req.Command)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, link)
}
