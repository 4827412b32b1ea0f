// Package response 统一HTTP响应格式
//
//	{"code": 0, "message": "success", "data": {...}}
//	{"code": 40401, "message": "分类不存在"}
//
// 与早期"一律返回200"的做法不同，错误响应按错误大类返回对应HTTP状态码，
// 业务错误码仍放在body里供客户端细分
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
// 内部错误只记录日志，不把底层错误返回给客户端
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context(), zap.NewNop()).Error("请求处理失败",
			zap.Int("code", appErr.Code),
			zap.Error(err))
	}

	c.AbortWithStatusJSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// HTTPStatus 错误大类映射为HTTP状态码
func HTTPStatus(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalidArgument:
		return http.StatusBadRequest
	case apperrors.KindAlreadyExists, apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindPermissionDenied:
		return http.StatusForbidden
	case apperrors.KindFailedPrecondition:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
