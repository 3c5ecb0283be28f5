package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateLoan(c *gin.Context) {
	var req service.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求体不合法: "+err.Error())
		return
	}

	loan, err := h.loanService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, loan)
}

func (h *Handler) ListLoans(c *gin.Context) {
	loans, err := h.loanService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, loans)
}

func (h *Handler) GetLoan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	loan, err := h.loanService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, loan)
}

func (h *Handler) CloseLoan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	closed, err := h.loanService.Close(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !closed {
		response.NotFound(c, "贷款不存在或已关闭")
		return
	}
	response.Success(c, gin.H{"closed": true})
}
