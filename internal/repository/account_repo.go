package repository

import (
	"context"
	"errors"
	"time"

	"bankoffice/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound = errors.New("账户不存在")
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create 写入账户及其受益人（gorm 关联在同一事务内一并插入）
func (r *AccountRepository) Create(ctx context.Context, tx *gorm.DB, account *model.Account) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(account).Error
}

func (r *AccountRepository) List(ctx context.Context) ([]*model.Account, error) {
	var accounts []*model.Account
	err := r.db.WithContext(ctx).
		Preload("Beneficiaries").
		Order("created_at DESC").
		Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Preload("Beneficiaries").
		First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetActiveForUpdate 过账校验用：按（id, 客户, active）取行并加行锁
// FOR UPDATE 保证校验到过账之间余额不被并发修改
func (r *AccountRepository) GetActiveForUpdate(ctx context.Context, tx *gorm.DB, id, clientID int64) (*model.Account, error) {
	var account model.Account
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND client_id = ? AND status = ?", id, clientID, model.ProductStatusActive).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// ApplyDelta 余额加减（delta 可为负）
func (r *AccountRepository) ApplyDelta(ctx context.Context, tx *gorm.DB, id int64, delta decimal.Decimal) error {
	result := tx.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Update("amount", gorm.Expr("amount + ?", delta))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Close 关闭账户
// 条件更新保证并发安全：只有 active 的行会被改写，返回是否有行被更新。
// 已关闭或不存在都返回 false，由调用方决定提示语。
func (r *AccountRepository) Close(ctx context.Context, id int64) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
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
