package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateClient 登记客户（同时创建登录账号）
func (h *Handler) CreateClient(c *gin.Context) {
	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求体不合法: "+err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, client)
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, clients)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, client)
}

// ToggleClientStatus 启用/停用客户登录账号
// 路径参数是客户 ID，先换算成对应的用户 ID 再翻转状态
func (h *Handler) ToggleClientStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	toggled, err := h.clientService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !toggled {
		response.NotFound(c, "客户不存在")
		return
	}
	response.Success(c, gin.H{"toggled": true})
}
