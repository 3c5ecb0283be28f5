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
	ErrInsuranceNotFound = errors.New("保单不存在")
)

// InsuranceRow 保单 + 客户姓名的联查结果
type InsuranceRow struct {
	model.Insurance
	ClientName string `json:"client_name"`
}

type InsuranceRepository struct {
	db *gorm.DB
}

func NewInsuranceRepository(db *gorm.DB) *InsuranceRepository {
	return &InsuranceRepository{db: db}
}

func (r *InsuranceRepository) Create(ctx context.Context, tx *gorm.DB, insurance *model.Insurance) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(insurance).Error
}

func (r *InsuranceRepository) List(ctx context.Context) ([]*InsuranceRow, error) {
	var rows []*InsuranceRow
	err := r.db.WithContext(ctx).
		Table("insurances").
		Select("insurances.*, clients.full_name AS client_name").
		Joins("JOIN clients ON clients.id = insurances.client_id").
		Order("insurances.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *InsuranceRepository) GetByID(ctx context.Context, id int64) (*InsuranceRow, error) {
	var row InsuranceRow
	err := r.db.WithContext(ctx).
		Table("insurances").
		Select("insurances.*, clients.full_name AS client_name").
		Joins("JOIN clients ON clients.id = insurances.client_id").
		Where("insurances.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, ErrInsuranceNotFound
	}
	return &row, nil
}

// GetActiveForUpdate 过账校验用，加行锁
func (r *InsuranceRepository) GetActiveForUpdate(ctx context.Context, tx *gorm.DB, id, clientID int64) (*model.Insurance, error) {
	var insurance model.Insurance
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND client_id = ? AND status = ?", id, clientID, model.ProductStatusActive).
		First(&insurance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsuranceNotFound
		}
		return nil, err
	}
	return &insurance, nil
}

// Close 退保，条件更新保证只关闭一次
func (r *InsuranceRepository) Close(ctx context.Context, id int64) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Insurance{}).
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
