package repository

import (
	"context"
	"errors"

	"bankoffice/internal/model"

	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("员工不存在")
)

// EmployeeRow 员工档案 + 登录账号状态的联查结果
type EmployeeRow struct {
	model.Employee
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, tx *gorm.DB, employee *model.Employee) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*EmployeeRow, error) {
	var rows []*EmployeeRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.*, users.username, users.is_active").
		Joins("JOIN users ON users.id = employees.user_id").
		Order("employees.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*EmployeeRow, error) {
	var row EmployeeRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.*, users.username, users.is_active").
		Joins("JOIN users ON users.id = employees.user_id").
		Where("employees.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, ErrEmployeeNotFound
	}
	return &row, nil
}
