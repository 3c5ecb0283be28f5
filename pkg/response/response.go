package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessBody 成功响应信封
type SuccessBody struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorBody 失败响应信封
type ErrorBody struct {
	Error string `json:"error"`
}

// Success 200 成功
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessBody{Success: true, Data: data})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessBody{Success: true, Data: data})
}

// Error 按状态码返回错误
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ServerError 500
// 对外只给通用提示，原始原因由调用方负责记日志
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "服务器内部错误")
}
