package repository

import (
	"context"

	"bankoffice/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================================
// 钱包只读投影
// ============================================================================
//
// 每次调用都从产品行 + 流水表现算，没有任何缓存或物化聚合。
// 正确性完全依赖过账服务把每一笔影响余额的事件都落进流水表。

// WalletAccountRow 账户 + 按流水汇总的当前余额
type WalletAccountRow struct {
	model.Account
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// WalletCardRow 卡片 + 已用额度与可用额度
type WalletCardRow struct {
	model.Card
	UsedAmount      decimal.Decimal `json:"used_amount"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
}

// WalletLoanRow 贷款 + 已还与剩余
type WalletLoanRow struct {
	model.Loan
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// WalletInsuranceRow 保单 + 已缴保费
type WalletInsuranceRow struct {
	model.Insurance
	PaidAmount decimal.Decimal `json:"paid_amount"`
}

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// ClientAccounts 客户名下 active 账户，余额 = 存款合计 - 取款合计
func (r *WalletRepository) ClientAccounts(ctx context.Context, clientID int64) ([]*WalletAccountRow, error) {
	var rows []*WalletAccountRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.*,
		       COALESCE(SUM(CASE
		           WHEN t.transaction_type = 'deposit'    THEN t.amount
		           WHEN t.transaction_type = 'withdrawal' THEN -t.amount
		           ELSE 0
		       END), 0) AS current_balance
		FROM accounts a
		LEFT JOIN transactions t ON a.id = t.reference_id AND t.reference_type = 'account'
		WHERE a.client_id = ? AND a.status = 'active'
		GROUP BY a.id
		ORDER BY a.created_at DESC`, clientID).
		Scan(&rows).Error
	return rows, err
}

// ClientCards 客户名下 active 卡片，已用额度 = 支付合计
func (r *WalletRepository) ClientCards(ctx context.Context, clientID int64) ([]*WalletCardRow, error) {
	var rows []*WalletCardRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.*,
		       COALESCE(SUM(CASE
		           WHEN t.transaction_type = 'payment' THEN t.amount
		           ELSE 0
		       END), 0) AS used_amount,
		       c.limit_amount - COALESCE(SUM(CASE
		           WHEN t.transaction_type = 'payment' THEN t.amount
		           ELSE 0
		       END), 0) AS available_credit
		FROM cards c
		LEFT JOIN transactions t ON c.id = t.reference_id AND t.reference_type = 'card'
		WHERE c.client_id = ? AND c.status = 'active'
		GROUP BY c.id
		ORDER BY c.created_at DESC`, clientID).
		Scan(&rows).Error
	return rows, err
}

// ClientLoans 客户名下 active 贷款，剩余 = 放款金额 - 已还合计
func (r *WalletRepository) ClientLoans(ctx context.Context, clientID int64) ([]*WalletLoanRow, error) {
	var rows []*WalletLoanRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.*,
		       COALESCE(SUM(CASE
		           WHEN t.transaction_type = 'payment' THEN t.amount
		           ELSE 0
		       END), 0) AS paid_amount,
		       l.amount - COALESCE(SUM(CASE
		           WHEN t.transaction_type = 'payment' THEN t.amount
		           ELSE 0
		       END), 0) AS remaining_balance
		FROM loans l
		LEFT JOIN transactions t ON l.id = t.reference_id AND t.reference_type = 'loan'
		WHERE l.client_id = ? AND l.status = 'active'
		GROUP BY l.id
		ORDER BY l.created_at DESC`, clientID).
		Scan(&rows).Error
	return rows, err
}

// ClientInsurances 客户名下 active 保单，已缴 = 缴费合计
func (r *WalletRepository) ClientInsurances(ctx context.Context, clientID int64) ([]*WalletInsuranceRow, error) {
	var rows []*WalletInsuranceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.*,
		       COALESCE(SUM(CASE
		           WHEN t.transaction_type = 'payment' THEN t.amount
		           ELSE 0
		       END), 0) AS paid_amount
		FROM insurances i
		LEFT JOIN transactions t ON i.id = t.reference_id AND t.reference_type = 'insurance'
		WHERE i.client_id = ? AND i.status = 'active'
		GROUP BY i.id
		ORDER BY i.created_at DESC`, clientID).
		Scan(&rows).Error
	return rows, err
}
