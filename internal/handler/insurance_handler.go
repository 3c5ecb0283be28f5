package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateInsurance(c *gin.Context) {
	var req service.CreateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求体不合法: "+err.Error())
		return
	}

	insurance, err := h.insuranceService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, insurance)
}

func (h *Handler) ListInsurances(c *gin.Context) {
	insurances, err := h.insuranceService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, insurances)
}

func (h *Handler) GetInsurance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	insurance, err := h.insuranceService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, insurance)
}

func (h *Handler) CloseInsurance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	closed, err := h.insuranceService.Close(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !closed {
		response.NotFound(c, "保单不存在或已关闭")
		return
	}
	response.Success(c, gin.H{"closed": true})
}
