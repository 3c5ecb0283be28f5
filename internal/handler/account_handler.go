package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateAccount 开户，受益人随账户一并提交
func (h *Handler) CreateAccount(c *gin.Context) {
	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求体不合法: "+err.Error())
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, account)
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, accounts)
}

func (h *Handler) GetAccount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, account)
}

// CloseAccount 销户
// 不存在和已关闭不作区分，统一返回 404 提示
func (h *Handler) CloseAccount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	closed, err := h.accountService.Close(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !closed {
		response.NotFound(c, "账户不存在或已关闭")
		return
	}
	response.Success(c, gin.H{"closed": true})
}
