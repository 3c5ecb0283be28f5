package service

import (
	"context"
	"fmt"
	"time"

	"bankoffice/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// DashboardTransaction 首页最近交易（带客户名与操作员名）
type DashboardTransaction struct {
	ID              int64           `json:"id"`
	TransactionCode string          `json:"transaction_code"`
	ReferenceType   string          `json:"reference_type"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	ClientName      string          `json:"client_name"`
	EmployeeName    string          `json:"employee_name"`
	CreatedAt       time.Time       `json:"created_at"`
}

type ProductDistribution struct {
	Accounts   int64 `json:"accounts"`
	Cards      int64 `json:"cards"`
	Loans      int64 `json:"loans"`
	Insurances int64 `json:"insurances"`
}

type Dashboard struct {
	EmployeeCount       int64                   `json:"employee_count"`
	ClientCount         int64                   `json:"client_count"`
	ProductCount        int64                   `json:"product_count"`
	TransactionCount    int64                   `json:"transaction_count"`
	LatestTransactions  []*DashboardTransaction `json:"latest_transactions"`
	ProductDistribution ProductDistribution     `json:"product_distribution"`
}

// GetDashboard 后台首页汇总
// 每次请求现算，数据量在后台场景下可以接受
func (s *AdminService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	db := s.db.WithContext(ctx)
	dash := &Dashboard{}

	if err := db.Model(&model.Employee{}).Count(&dash.EmployeeCount).Error; err != nil {
		return nil, fmt.Errorf("统计员工失败: %w", err)
	}
	if err := db.Model(&model.Client{}).Count(&dash.ClientCount).Error; err != nil {
		return nil, fmt.Errorf("统计客户失败: %w", err)
	}
	if err := db.Model(&model.Transaction{}).Count(&dash.TransactionCount).Error; err != nil {
		return nil, fmt.Errorf("统计交易失败: %w", err)
	}

	d := &dash.ProductDistribution
	if err := db.Model(&model.Account{}).Count(&d.Accounts).Error; err != nil {
		return nil, fmt.Errorf("统计账户失败: %w", err)
	}
	if err := db.Model(&model.Card{}).Count(&d.Cards).Error; err != nil {
		return nil, fmt.Errorf("统计卡片失败: %w", err)
	}
	if err := db.Model(&model.Loan{}).Count(&d.Loans).Error; err != nil {
		return nil, fmt.Errorf("统计贷款失败: %w", err)
	}
	if err := db.Model(&model.Insurance{}).Count(&d.Insurances).Error; err != nil {
		return nil, fmt.Errorf("统计保单失败: %w", err)
	}
	dash.ProductCount = d.Accounts + d.Cards + d.Loans + d.Insurances

	// 操作员名从员工档案取，系统自动过账（无员工档案）显示为空
	err := db.Raw(`
		SELECT t.id, t.transaction_code, t.reference_type, t.transaction_type,
		       t.amount, t.created_at,
		       c.full_name AS client_name,
		       COALESCE(e.full_name, '') AS employee_name
		FROM transactions t
		JOIN clients c ON c.id = t.client_id
		LEFT JOIN employees e ON e.user_id = t.created_by
		ORDER BY t.created_at DESC
		LIMIT 4
	`).Scan(&dash.LatestTransactions).Error
	if err != nil {
		return nil, fmt.Errorf("查询最近交易失败: %w", err)
	}

	return dash, nil
}
