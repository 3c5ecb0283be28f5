package handler

import (
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetWallet 当前客户的钱包视图
// 客户身份只认令牌里的 client_id，不接受任何请求参数
func (h *Handler) GetWallet(c *gin.Context) {
	claims := mustClaims(c)
	if claims.ClientID <= 0 {
		fail(c, service.ErrNoClientProfile)
		return
	}

	wallet, err := h.walletService.Get(c.Request.Context(), claims.ClientID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, wallet)
}
