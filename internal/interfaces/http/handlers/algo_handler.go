package handlers

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/h5sign/internal/application/dto"
	"github.com/turtacn/h5sign/internal/application/service"
	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

// AlgoHandler serves /h5st, /sign and /versions.
// AlgoHandler 处理 h5st 与 sign 加签请求。
type AlgoHandler struct {
	service service.AlgoAppService
	log     logger.Logger
}

// NewAlgoHandler creates an AlgoHandler.
func NewAlgoHandler(svc service.AlgoAppService, log logger.Logger) *AlgoHandler {
	return &AlgoHandler{service: svc, log: log.WithComponent("algo_handler")}
}

// H5st handles POST /h5st with a JSON body.
func (h *AlgoHandler) H5st(c *gin.Context) {
	var req dto.H5stRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, errors.ErrInvalidRequest("请求体不是合法的JSON").WithCause(err))
		return
	}
	h.h5st(c, &req)
}

// H5stQuery handles GET /h5st. The business parameters come either as a JSON
// text in "body" or as body[key]=value pairs, kept in query order.
func (h *AlgoHandler) H5stQuery(c *gin.Context) {
	req, err := h5stRequestFromQuery(c.Request.URL.RawQuery)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.h5st(c, req)
}

func (h *AlgoHandler) h5st(c *gin.Context, req *dto.H5stRequest) {
	resp, err := h.service.H5st(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, resp)
}

// Sign handles POST /sign.
func (h *AlgoHandler) Sign(c *gin.Context) {
	var req dto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, errors.ErrInvalidRequest("请求体不是合法的JSON").WithCause(err))
		return
	}
	h.sign(c, &req)
}

// SignQuery handles GET /sign.
func (h *AlgoHandler) SignQuery(c *gin.Context) {
	req := &dto.SignRequest{
		FunctionID:    c.Query("functionId"),
		Client:        c.Query("client"),
		ClientVersion: c.Query("clientVersion"),
		UUID:          c.Query("uuid"),
	}
	if body, ok := c.GetQuery("body"); ok {
		req.Body = body
	}
	h.sign(c, req)
}

func (h *AlgoHandler) sign(c *gin.Context, req *dto.SignRequest) {
	resp, err := h.service.Sign(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, resp)
}

// Versions handles GET /versions.
func (h *AlgoHandler) Versions(c *gin.Context) {
	respondOK(c, h.service.Versions(c.Request.Context()))
}

// h5stRequestFromQuery builds a request from a raw query string.
func h5stRequestFromQuery(rawQuery string) (*dto.H5stRequest, error) {
	req := &dto.H5stRequest{}
	nested := models.NewOrderedObject()
	var bodyText string

	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, errors.ErrInvalidRequest("查询参数非法").WithCause(err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, errors.ErrInvalidRequest("查询参数非法").WithCause(err)
		}

		if strings.HasPrefix(key, "body[") && strings.HasSuffix(key, "]") {
			nested.Set(key[len("body["):len(key)-1], value)
			continue
		}
		switch key {
		case "version":
			req.Version = value
		case "pin":
			req.Pin = value
		case "ua":
			req.UA = value
		case "h5st":
			req.H5st = value
		case "appId":
			req.AppID = value
		case "debug":
			req.Debug = utils.StringToBool(value)
		case "reuseToken":
			req.ReuseToken = utils.StringToBool(value)
		case "stk":
			req.Stk = append(req.Stk, utils.SplitAndTrim(value)...)
		case "body":
			bodyText = value
		}
	}

	switch {
	case bodyText != "":
		body, err := models.ParseOrderedObject(bodyText)
		if err != nil {
			return nil, errors.ErrInvalidRequest("body需为JSON对象").WithCause(err)
		}
		req.Body = body
	case nested.Len() > 0:
		req.Body = nested
	}
	return req, nil
}
