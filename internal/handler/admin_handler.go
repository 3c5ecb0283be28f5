package handler

import (
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard 后台首页汇总
func (h *Handler) GetDashboard(c *gin.Context) {
	dashboard, err := h.adminService.GetDashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dashboard)
}
