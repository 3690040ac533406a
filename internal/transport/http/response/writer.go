package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/errs"
)

// Success 200，业务码 0
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, OK(data))
}

// Created 201，业务码 0
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, OK(data))
}

// Fail 按错误枚举写真实 HTTP 状态；非业务错误兜底 500，细节只进日志
func Fail(c *gin.Context, err error) {
	var ae *errs.AppError
	if !errors.As(err, &ae) {
		ae = &errs.AppError{Code: CodeServerError, Msg: "internal error", Err: err}
	}
	if ae.Code == CodeServerError {
		// 挂真实原因给访问日志，响应里只有笼统文案
		cause := ae.Err
		if cause == nil {
			cause = err
		}
		_ = c.Error(cause)
	}
	c.JSON(ae.Code, Error(ae.Code, ae.Msg))
}

// Abort 中间件拒绝请求时终止链路
func Abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, Error(code, msg))
}
