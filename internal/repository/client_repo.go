package repository

import (
	"context"
	"errors"

	"bankoffice/internal/model"

	"gorm.io/gorm"
)

var (
	ErrClientNotFound = errors.New("客户不存在")
)

// ClientRow 客户档案 + 登录账号状态的联查结果
type ClientRow struct {
	model.Client
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, tx *gorm.DB, client *model.Client) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) List(ctx context.Context) ([]*ClientRow, error) {
	var rows []*ClientRow
	err := r.db.WithContext(ctx).
		Table("clients").
		Select("clients.*, users.username, users.is_active").
		Joins("JOIN users ON users.id = clients.user_id").
		Order("clients.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*ClientRow, error) {
	var row ClientRow
	err := r.db.WithContext(ctx).
		Table("clients").
		Select("clients.*, users.username, users.is_active").
		Joins("JOIN users ON users.id = clients.user_id").
		Where("clients.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, ErrClientNotFound
	}
	return &row, nil
}

func (r *ClientRepository) GetByUserID(ctx context.Context, userID int64) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// Exists 产品建档前校验客户存在
func (r *ClientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
