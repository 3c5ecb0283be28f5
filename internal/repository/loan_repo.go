package repository

import (
	"context"
	"errors"
	"time"

	"bankoffice/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrLoanNotFound = errors.New("贷款不存在")
)

// LoanRow 贷款 + 客户姓名的联查结果
type LoanRow struct {
	model.Loan
	ClientName string `json:"client_name"`
}

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Create(ctx context.Context, tx *gorm.DB, loan *model.Loan) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(loan).Error
}

func (r *LoanRepository) List(ctx context.Context) ([]*LoanRow, error) {
	var rows []*LoanRow
	err := r.db.WithContext(ctx).
		Table("loans").
		Select("loans.*, clients.full_name AS client_name").
		Joins("JOIN clients ON clients.id = loans.client_id").
		Order("loans.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*LoanRow, error) {
	var row LoanRow
	err := r.db.WithContext(ctx).
		Table("loans").
		Select("loans.*, clients.full_name AS client_name").
		Joins("JOIN clients ON clients.id = loans.client_id").
		Where("loans.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, ErrLoanNotFound
	}
	return &row, nil
}

// GetActiveForUpdate 过账校验用，加行锁
func (r *LoanRepository) GetActiveForUpdate(ctx context.Context, tx *gorm.DB, id, clientID int64) (*model.Loan, error) {
	var loan model.Loan
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND client_id = ? AND status = ?", id, clientID, model.ProductStatusActive).
		First(&loan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return &loan, nil
}

// Close 结清贷款，条件更新保证只关闭一次
func (r *LoanRepository) Close(ctx context.Context, id int64) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Loan{}).
		Where("id = ? AND status = ?", id, model.ProductStatusActive).
		Updates(map[string]interface{}{
			"status":    model.ProductStatusClosed,
			"closed_at": &now,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
