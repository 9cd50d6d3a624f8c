package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/turtacn/h5sign/internal/application/service/mocks"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
)

func setupCommandRouter(svc *mocks.MockCommandAppService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommandHandler(svc, logger.NewNoopLogger())
	r := gin.New()
	r.GET("/jComExchange", h.Exchange)
	r.POST("/jComExchange", h.Exchange)
	return r
}

func TestCommandHandler_Exchange(t *testing.T) {
	svc := new(mocks.MockCommandAppService)
	router := setupCommandRouter(svc)
	const code = "￥AbCdEf123！"
	const link = "https://api.m.jd.com/client.action?functionId=jComExchange"
	svc.On("Exchange", mock.Anything, code).Return(link, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/jComExchange?command="+url.QueryEscape(code), nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"`+link+`"`, string(decode(t, w).Data))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/jComExchange", bytes.NewBufferString(`{"command":"`+code+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertNumberOfCalls(t, "Exchange", 2)
}

func TestCommandHandler_ExchangeErrors(t *testing.T) {
	svc := new(mocks.MockCommandAppService)
	router := setupCommandRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/jComExchange", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w).Error.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/jComExchange", bytes.NewBufferString(`{"command":"  \t "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w).Error.Code)

	svc.On("Exchange", mock.Anything, "hello").Return("", errors.ErrInvalidCommand("口令格式错误"))
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/jComExchange", bytes.NewBufferString(`{"command":"hello"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_command", decode(t, w).Error.Code)
	svc.AssertNotCalled(t, "Exchange", mock.Anything, "")
}
