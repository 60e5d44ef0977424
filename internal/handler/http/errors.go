package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ttguo7/kid-activity-platform/internal/service"
)

// HandleServiceError 把 Service 层错误映射为统一的 HTTP 状态码和响应结构：
// 校验错误 400、未找到 404，其余一律 500 并附带底层错误信息便于排查。
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrEmptyID):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrActivityNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
