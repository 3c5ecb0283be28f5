package handler

import (
	"net/http"

	"bankoffice/internal/config"
	"bankoffice/internal/model"

	"github.com/gin-gonic/gin"
)

// route 声明式路由表的一行
// roles 为 nil 表示任意已认证角色即可访问
type route struct {
	method  string
	path    string
	roles   []string
	handler gin.HandlerFunc
}

// routes 全部受保护接口集中在一张表里，权限一目了然
func (h *Handler) routes() []route {
	staff := []string{model.RoleAdmin, model.RoleEmployee}
	tellers := []string{model.RoleAdmin, model.RoleEmployee, model.RoleCashier}
	adminOnly := []string{model.RoleAdmin}

	return []route{
		{http.MethodGet, "/auth/profile", nil, h.GetProfile},

		{http.MethodPost, "/clients", staff, h.CreateClient},
		{http.MethodGet, "/clients", staff, h.ListClients},
		{http.MethodGet, "/clients/:id", staff, h.GetClient},
		{http.MethodPut, "/clients/:id/toggle-status", adminOnly, h.ToggleClientStatus},

		{http.MethodPost, "/employees", adminOnly, h.CreateEmployee},
		{http.MethodGet, "/employees", staff, h.ListEmployees},
		{http.MethodGet, "/employees/:id", staff, h.GetEmployee},
		{http.MethodPut, "/employees/:id/toggle-status", adminOnly, h.ToggleEmployeeStatus},

		{http.MethodPost, "/accounts", staff, h.CreateAccount},
		{http.MethodGet, "/accounts", staff, h.ListAccounts},
		{http.MethodGet, "/accounts/:id", staff, h.GetAccount},
		{http.MethodPut, "/accounts/:id/close", staff, h.CloseAccount},

		{http.MethodPost, "/cards", staff, h.CreateCard},
		{http.MethodGet, "/cards", staff, h.ListCards},
		{http.MethodGet, "/cards/:id", staff, h.GetCard},
		{http.MethodPut, "/cards/:id/close", staff, h.CloseCard},

		{http.MethodPost, "/loans", staff, h.CreateLoan},
		{http.MethodGet, "/loans", staff, h.ListLoans},
		{http.MethodGet, "/loans/:id", staff, h.GetLoan},
		{http.MethodPut, "/loans/:id/close", staff, h.CloseLoan},

		{http.MethodPost, "/insurances", staff, h.CreateInsurance},
		{http.MethodGet, "/insurances", staff, h.ListInsurances},
		{http.MethodGet, "/insurances/:id", staff, h.GetInsurance},
		{http.MethodPut, "/insurances/:id/close", staff, h.CloseInsurance},

		{http.MethodPost, "/transactions", tellers, h.PostTransaction},
		{http.MethodGet, "/transactions/client/:clientId", tellers, h.ListClientTransactions},
		{http.MethodGet, "/transactions/product/:type/:id", tellers, h.ListProductTransactions},

		{http.MethodGet, "/wallet", []string{model.RoleClient}, h.GetWallet},

		{http.MethodGet, "/admin/dashboard", adminOnly, h.GetDashboard},
	}
}

// SetupRouter 组装中间件与路由
func (h *Handler) SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(Logger(), Recovery(), CORS(cfg.CORS.AllowOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/auth/login", h.Login)

	authed := api.Group("", JWTAuth(h.authService))
	for _, rt := range h.routes() {
		authed.Handle(rt.method, rt.path, RequireRoles(rt.roles...), rt.handler)
	}

	return r
}
