package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// Login 用户名密码换令牌
func (h *Handler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求体不合法: "+err.Error())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{"token": token})
}

// GetProfile 当前登录用户的资料
func (h *Handler) GetProfile(c *gin.Context) {
	claims := mustClaims(c)

	user, err := h.authService.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, user)
}
