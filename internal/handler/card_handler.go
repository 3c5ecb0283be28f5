package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCard(c *gin.Context) {
	var req service.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求体不合法: "+err.Error())
		return
	}

	card, err := h.cardService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, card)
}

func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.cardService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, cards)
}

func (h *Handler) GetCard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	card, err := h.cardService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, card)
}

func (h *Handler) CloseCard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	closed, err := h.cardService.Close(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !closed {
		response.NotFound(c, "卡片不存在或已关闭")
		return
	}
	response.Success(c, gin.H{"closed": true})
}
