package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostTransaction 交易过账
// 操作员身份从令牌里取，不信任请求体
func (h *Handler) PostTransaction(c *gin.Context) {
	var req service.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求体不合法: "+err.Error())
		return
	}

	claims := mustClaims(c)
	trans, err := h.transactionService.Post(c.Request.Context(), &req, claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, trans)
}

// ListClientTransactions 某客户的全部流水（新到旧）
func (h *Handler) ListClientTransactions(c *gin.Context) {
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}

	transactions, err := h.transactionService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, transactions)
}

// ListProductTransactions 某产品的全部流水（新到旧）
func (h *Handler) ListProductTransactions(c *gin.Context) {
	referenceType := c.Param("type")
	referenceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	transactions, err := h.transactionService.ListByProduct(c.Request.Context(), referenceID, referenceType)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, transactions)
}
