package handlers

import (
	"errors"
	"fmt"
	"strings"

	apperrors "wms/pkg/errors"
	"wms/pkg/logger"
	"wms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError 将业务错误映射为统一返回。
// 冲突类错误携带字段信息方便客户端处理；
// 未识别的错误一律按存储故障处理，细节只进日志。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "记录不存在或已删除")
	case errors.Is(err, apperrors.ErrDuplicateKey):
		response.Conflict(c, err.Error())
	case errors.Is(err, apperrors.ErrVersionConflict):
		response.Conflict(c, apperrors.ErrVersionConflict.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		response.Unauthorized(c, apperrors.ErrUnauthenticated.Error())
	default:
		logger.GetLogger().WithError(err).Error("请求处理失败")
		response.ServerError(c, "服务器内部错误")
	}
}

// bindError 将请求体绑定失败翻译为可读消息
func bindError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "请求参数错误: " + err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s 不能为空", fieldErr.Field()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s 长度不能超过%s", fieldErr.Field(), fieldErr.Param()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s 不能小于%s", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s 不符合要求", fieldErr.Field()))
		}
	}
	return "请求参数错误: " + strings.Join(messages, "；")
}
