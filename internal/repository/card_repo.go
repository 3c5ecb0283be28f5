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
	ErrCardNotFound = errors.New("卡片不存在")
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) List(ctx context.Context) ([]*model.Card, error) {
	var cards []*model.Card
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// GetActiveForUpdate 过账校验用，加行锁
func (r *CardRepository) GetActiveForUpdate(ctx context.Context, tx *gorm.DB, id, clientID int64) (*model.Card, error) {
	var card model.Card
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND client_id = ? AND status = ?", id, clientID, model.ProductStatusActive).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// Close 注销卡片，条件更新保证只注销一次
func (r *CardRepository) Close(ctx context.Context, id int64) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Card{}).
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
