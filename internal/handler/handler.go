package handler

import (
	"errors"
	"log"
	"strconv"

	"bankoffice/internal/config"
	"bankoffice/internal/repository"
	"bankoffice/internal/service"
	"bankoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Handler 聚合全部业务服务，作为路由注册的唯一入口
// 依赖在组装根（main）一次性注入，handler 内不再触碰全局状态
type Handler struct {
	cfg *config.Config

	authService        *service.AuthService
	clientService      *service.ClientService
	employeeService    *service.EmployeeService
	accountService     *service.AccountService
	cardService        *service.CardService
	loanService        *service.LoanService
	insuranceService   *service.InsuranceService
	transactionService *service.TransactionService
	walletService      *service.WalletService
	adminService       *service.AdminService
}

func NewHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Handler {
	return &Handler{
		cfg:                cfg,
		authService:        service.NewAuthService(db, cfg),
		clientService:      service.NewClientService(db),
		employeeService:    service.NewEmployeeService(db),
		accountService:     service.NewAccountService(db),
		cardService:        service.NewCardService(db),
		loanService:        service.NewLoanService(db),
		insuranceService:   service.NewInsuranceService(db),
		transactionService: service.NewTransactionService(db, redisClient, cfg.Kafka.Topic.TransactionPosted),
		walletService:      service.NewWalletService(db, cfg.Business.RecentTransactions),
		adminService:       service.NewAdminService(db),
	}
}

// fail 统一错误出口：按错误分类映射 HTTP 状态码
// 未识别的错误一律记日志并返回通用 500 提示，不向调用方泄露内部原因
func fail(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err), service.IsBusinessRuleError(err):
		response.BadRequest(c, err.Error())
	case isNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUserInactive):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrNoClientProfile):
		response.Forbidden(c, err.Error())
	default:
		log.Printf("[Handler] %s %s 未预期错误: %v", c.Request.Method, c.Request.URL.Path, err)
		response.ServerError(c)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrProductNotFound) ||
		errors.Is(err, repository.ErrClientNotFound) ||
		errors.Is(err, repository.ErrEmployeeNotFound) ||
		errors.Is(err, repository.ErrAccountNotFound) ||
		errors.Is(err, repository.ErrCardNotFound) ||
		errors.Is(err, repository.ErrLoanNotFound) ||
		errors.Is(err, repository.ErrInsuranceNotFound) ||
		errors.Is(err, repository.ErrUserNotFound)
}

// pathID 解析路径里的数字 ID，非法时返回 (0, false) 并已写出 400
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "路径参数 "+name+" 必须是正整数")
		return 0, false
	}
	return id, true
}
