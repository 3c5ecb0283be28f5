package repository

import (
	"context"

	"bankoffice/internal/model"

	"gorm.io/gorm"
)

// TransactionRow 流水 + 产品业务编号的联查结果
type TransactionRow struct {
	model.Transaction
	ProductReference string `json:"product_reference"`
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create 写入流水
// 流水只追加：本仓储不提供任何更新或删除方法
func (r *TransactionRepository) Create(ctx context.Context, tx *gorm.DB, trans *model.Transaction) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(trans).Error
}

func (r *TransactionRepository) ListByClient(ctx context.Context, clientID int64) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *TransactionRepository) ListByProduct(ctx context.Context, referenceID int64, referenceType string) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	err := r.db.WithContext(ctx).
		Where("reference_id = ? AND reference_type = ?", referenceID, referenceType).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

// Recent 客户最近 N 笔流水，附带可读的产品业务编号
// 四类产品各自 LEFT JOIN，CASE 取回对应的编号
func (r *TransactionRepository) Recent(ctx context.Context, clientID int64, limit int) ([]*TransactionRow, error) {
	var rows []*TransactionRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.*,
		       CASE
		           WHEN t.reference_type = 'account'   THEN a.account_number
		           WHEN t.reference_type = 'card'      THEN c.card_number
		           WHEN t.reference_type = 'loan'      THEN l.loan_number
		           WHEN t.reference_type = 'insurance' THEN i.policy_number
		       END AS product_reference
		FROM transactions t
		LEFT JOIN accounts   a ON t.reference_id = a.id AND t.reference_type = 'account'
		LEFT JOIN cards      c ON t.reference_id = c.id AND t.reference_type = 'card'
		LEFT JOIN loans      l ON t.reference_id = l.id AND t.reference_type = 'loan'
		LEFT JOIN insurances i ON t.reference_id = i.id AND t.reference_type = 'insurance'
		WHERE t.client_id = ?
		ORDER BY t.created_at DESC
		LIMIT ?`, clientID, limit).
		Scan(&rows).Error
	return rows, err
}
