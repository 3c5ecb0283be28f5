package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bankoffice/internal/model"
	"bankoffice/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClientService struct {
	db         *gorm.DB
	userRepo   *repository.UserRepository
	clientRepo *repository.ClientRepository
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{
		db:         db,
		userRepo:   repository.NewUserRepository(db),
		clientRepo: repository.NewClientRepository(db),
	}
}

type CreateClientRequest struct {
	Username         string          `json:"username" binding:"required"`
	Password         string          `json:"password" binding:"required"`
	FullName         string          `json:"full_name" binding:"required"`
	MaritalStatus    string          `json:"marital_status" binding:"required"`
	IdentityDocument string          `json:"identity_document" binding:"required"`
	BirthDate        string          `json:"birth_date" binding:"required"`
	Age              int             `json:"age" binding:"required"`
	AddressStreet    string          `json:"address_street"`
	AddressHouse     string          `json:"address_house"`
	AddressCity      string          `json:"address_city"`
	AddressState     string          `json:"address_state"`
	Occupation       string          `json:"occupation" binding:"required"`
	MonthlyIncome    decimal.Decimal `json:"monthly_income"`
	Emails           string          `json:"emails"`
	Phones           string          `json:"phones"`
}

// validateClientInput 逐字段校验，返回第一个不合法项
func validateClientInput(req *CreateClientRequest) error {
	if !lenBetween(req.Username, 3, 50) {
		return newValidationError("用户名长度必须在 3 到 50 个字符之间")
	}
	if !lenBetween(req.Password, 6, 100) {
		return newValidationError("密码长度必须在 6 到 100 个字符之间")
	}
	if !lenBetween(req.FullName, 3, 100) {
		return newValidationError("姓名长度必须在 3 到 100 个字符之间")
	}
	if !model.ValidMaritalStatus(req.MaritalStatus) {
		return newValidationError("婚姻状况必须是 single、married、divorced 或 widowed")
	}
	if !lenBetween(req.IdentityDocument, 5, 20) {
		return newValidationError("证件号长度必须在 5 到 20 个字符之间")
	}
	if !validDate(req.BirthDate) {
		return newValidationError("出生日期格式必须为 YYYY-MM-DD")
	}
	if req.Age < 18 || req.Age > 100 {
		return newValidationError("年龄必须在 18 到 100 之间")
	}
	if !lenBetween(req.Occupation, 3, 100) {
		return newValidationError("职业长度必须在 3 到 100 个字符之间")
	}
	if !req.MonthlyIncome.IsPositive() || !decimalBetween(req.MonthlyIncome, "0", "999999.99") {
		return newValidationError("月收入必须是 0 到 999999.99 之间的正数")
	}
	if !optionalLenBetween(req.AddressStreet, 3, 100) {
		return newValidationError("街道长度必须在 3 到 100 个字符之间")
	}
	if !optionalLenBetween(req.AddressHouse, 1, 20) {
		return newValidationError("门牌号长度必须在 1 到 20 个字符之间")
	}
	if !optionalLenBetween(req.AddressCity, 3, 50) {
		return newValidationError("城市长度必须在 3 到 50 个字符之间")
	}
	if !optionalLenBetween(req.AddressState, 3, 50) {
		return newValidationError("省/州长度必须在 3 到 50 个字符之间")
	}
	if !optionalLenBetween(req.Emails, 5, 255) {
		return newValidationError("邮箱长度必须在 5 到 255 个字符之间")
	}
	if !optionalLenBetween(req.Phones, 5, 50) {
		return newValidationError("电话长度必须在 5 到 50 个字符之间")
	}
	return nil
}

// Create 开立客户档案
// 登录账号与客户档案在同一事务内写入；用户名、证件号的唯一性
// 最终由数据库唯一索引兜底（并发建档竞态只会有一方成功）
func (s *ClientService) Create(ctx context.Context, req *CreateClientRequest) (*model.Client, error) {
	if err := validateClientInput(req); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码摘要失败: %w", err)
	}

	client := &model.Client{
		FullName:         req.FullName,
		MaritalStatus:    req.MaritalStatus,
		IdentityDocument: req.IdentityDocument,
		BirthDate:        req.BirthDate,
		Age:              req.Age,
		AddressStreet:    req.AddressStreet,
		AddressHouse:     req.AddressHouse,
		AddressCity:      req.AddressCity,
		AddressState:     req.AddressState,
		Occupation:       req.Occupation,
		MonthlyIncome:    req.MonthlyIncome,
		Emails:           req.Emails,
		Phones:           req.Phones,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := &model.User{
			Username:     req.Username,
			PasswordHash: passwordHash,
			Role:         model.RoleClient,
			IsActive:     true,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("用户名已被使用")
			}
			return fmt.Errorf("创建登录账号失败: %w", err)
		}

		client.UserID = user.ID
		if err := s.clientRepo.Create(ctx, tx, client); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("证件号已被注册")
			}
			return fmt.Errorf("创建客户档案失败: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		log.Printf("[ClientService] 创建客户失败: %v", err)
		return nil, err
	}

	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]*repository.ClientRow, error) {
	return s.clientRepo.List(ctx)
}

func (s *ClientService) GetByID(ctx context.Context, id int64) (*repository.ClientRow, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// ToggleStatus 按客户 ID 启用/停用其登录账号
func (s *ClientService) ToggleStatus(ctx context.Context, clientID int64) (bool, error) {
	row, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.userRepo.ToggleStatus(ctx, row.UserID, model.RoleClient)
}
