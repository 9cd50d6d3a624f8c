package dto

import (
	"time"

	"github.com/turtacn/h5sign/pkg/errors"
)

// APIResponse 通用 API 响应结构
type APIResponse struct {
	Success   bool                  `json:"success"`
	Data      interface{}           `json:"data,omitempty"`
	Error     *errors.ErrorResponse `json:"error,omitempty"`
	TraceID   string                `json:"trace_id,omitempty"`
	Timestamp int64                 `json:"timestamp"`
}

// SuccessResponse 创建成功响应
func SuccessResponse(data interface{}, traceID string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		TraceID:   traceID,
		Timestamp: time.Now().UnixMilli(),
	}
}

// ErrorResponse 创建错误响应
func ErrorResponse(err error, traceID string) *APIResponse {
	return &APIResponse{
		Success:   false,
		Error:     errors.ToGenericErrorResponse(err),
		TraceID:   traceID,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NotFoundResponse 创建资源未找到响应
func NotFoundResponse(resource string, traceID string) *APIResponse {
	return ErrorResponse(errors.ErrNotFound(resource+" not found"), traceID)
}
