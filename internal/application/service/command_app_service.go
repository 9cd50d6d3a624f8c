package service

import (
	"context"
	"strings"

	"github.com/turtacn/h5sign/internal/application/dto"
	domain "github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

const (
	commandFunctionID = "jComExchange"
	commandAppCode    = "jApp"
)

// CommandAppService turns a share code into a signed exchange URL.
// CommandAppService 口令解析服务。
type CommandAppService interface {
	Exchange(ctx context.Context, command string) (string, error)
}

type commandAppServiceImpl struct {
	engine Engine
	rand   utils.Rand
	log    logger.Logger
}

// NewCommandAppService creates a CommandAppService.
func NewCommandAppService(engine Engine, r utils.Rand, log logger.Logger) CommandAppService {
	if r == nil {
		r = utils.DefaultRand
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &commandAppServiceImpl{engine: engine, rand: r, log: log.WithComponent("command_app_service")}
}

// Exchange returns the client.action URL that resolves command.
func (s *commandAppServiceImpl) Exchange(ctx context.Context, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", errors.ErrInvalidCommand("不符合口令规则")
	}
	parsed, err := domain.ParseCommand(command)
	if err != nil {
		return "", err
	}
	text, err := domain.EncryptCommand(parsed.Text)
	if err != nil {
		return "", errors.WrapError(err, constants.ErrCodeInternal, "command encryption failed")
	}
	body, err := utils.ToJSON(dto.CommandExchangeBody{
		AppCode:     commandAppCode,
		Text:        text,
		AliveMin:    1,
		CommandType: parsed.Type,
	})
	if err != nil {
		return "", errors.WrapError(err, constants.ErrCodeInternal, "command body serialization failed")
	}

	signed, err := signClientRequest(ctx, s.engine, s.rand, commandFunctionID, body, "", "", "")
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "command exchanged", logger.Int("command_type", parsed.Type))
	return constants.JDClientAction + "?" + signed.Qs, nil
}
