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

type AccountService struct {
	db          *gorm.DB
	clientRepo  *repository.ClientRepository
	accountRepo *repository.AccountRepository
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{
		db:          db,
		clientRepo:  repository.NewClientRepository(db),
		accountRepo: repository.NewAccountRepository(db),
	}
}

type BeneficiaryInput struct {
	FullName     string          `json:"full_name" binding:"required"`
	Relationship string          `json:"relationship" binding:"required"`
	Percentage   decimal.Decimal `json:"percentage"`
}

type CreateAccountRequest struct {
	ClientID      int64              `json:"client_id" binding:"required"`
	AccountNumber string             `json:"account_number" binding:"required"`
	Amount        decimal.Decimal    `json:"amount"`
	Beneficiaries []BeneficiaryInput `json:"beneficiaries"`
}

func validateAccountInput(req *CreateAccountRequest) error {
	if req.ClientID <= 0 {
		return newValidationError("客户 ID 不合法")
	}
	if !lenBetween(req.AccountNumber, 5, 20) {
		return newValidationError("账号长度必须在 5 到 20 个字符之间")
	}
	if req.Amount.IsNegative() || !decimalBetween(req.Amount, "0", "999999999.99") {
		return newValidationError("开户金额必须在 0 到 999999999.99 之间")
	}
	sum := decimal.Zero
	for _, b := range req.Beneficiaries {
		if !lenBetween(b.FullName, 3, 150) {
			return newValidationError("受益人姓名长度必须在 3 到 150 个字符之间")
		}
		if !lenBetween(b.Relationship, 2, 50) {
			return newValidationError("受益人关系长度必须在 2 到 50 个字符之间")
		}
		if b.Percentage.IsNegative() || !decimalBetween(b.Percentage, "0", "100") {
			return newValidationError("受益比例必须在 0 到 100 之间")
		}
		sum = sum.Add(b.Percentage)
	}
	if len(req.Beneficiaries) > 0 && !sum.Equal(decimal.NewFromInt(100)) {
		return newValidationError("所有受益人的受益比例之和必须等于 100")
	}
	return nil
}

// Create 开户，账户与受益人在同一事务内写入
// 账号唯一性交给数据库唯一索引兜底，冲突时映射为校验失败
func (s *AccountService) Create(ctx context.Context, req *CreateAccountRequest) (*model.Account, error) {
	if err := validateAccountInput(req); err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("查询客户失败: %w", err)
	}
	if !exists {
		return nil, repository.ErrClientNotFound
	}

	account := &model.Account{
		ClientID:      req.ClientID,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Status:        model.ProductStatusActive,
	}
	for _, b := range req.Beneficiaries {
		account.Beneficiaries = append(account.Beneficiaries, model.AccountBeneficiary{
			FullName:     b.FullName,
			Relationship: b.Relationship,
			Percentage:   b.Percentage,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.accountRepo.Create(ctx, tx, account); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("账号已被使用")
			}
			return fmt.Errorf("创建账户失败: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		log.Printf("[AccountService] 开户失败: %v", err)
		return nil, err
	}

	return account, nil
}

func (s *AccountService) List(ctx context.Context) ([]*model.Account, error) {
	return s.accountRepo.List(ctx)
}

func (s *AccountService) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// Close 销户，仅对 active 账户生效；重复销户返回 false
func (s *AccountService) Close(ctx context.Context, id int64) (bool, error) {
	return s.accountRepo.Close(ctx, id)
}
