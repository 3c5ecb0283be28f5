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

type CardService struct {
	db         *gorm.DB
	clientRepo *repository.ClientRepository
	cardRepo   *repository.CardRepository
}

func NewCardService(db *gorm.DB) *CardService {
	return &CardService{
		db:         db,
		clientRepo: repository.NewClientRepository(db),
		cardRepo:   repository.NewCardRepository(db),
	}
}

type CreateCardRequest struct {
	ClientID      int64           `json:"client_id" binding:"required"`
	CardNumber    string          `json:"card_number" binding:"required"`
	IssueDate     string          `json:"issue_date" binding:"required"`
	LimitAmount   decimal.Decimal `json:"limit_amount"`
	Network       string          `json:"network" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	MembershipFee decimal.Decimal `json:"membership_fee"`
}

func validateCardInput(req *CreateCardRequest) error {
	if req.ClientID <= 0 {
		return newValidationError("客户 ID 不合法")
	}
	if !lenBetween(req.CardNumber, 13, 19) {
		return newValidationError("卡号长度必须在 13 到 19 个字符之间")
	}
	if !validDate(req.IssueDate) {
		return newValidationError("发卡日期格式必须为 YYYY-MM-DD")
	}
	if !req.LimitAmount.IsPositive() || !decimalBetween(req.LimitAmount, "0", "999999.99") {
		return newValidationError("信用额度必须是 0 到 999999.99 之间的正数")
	}
	if !model.ValidCardNetwork(req.Network) {
		return newValidationError("卡组织必须是 Visa 或 MasterCard")
	}
	if !model.ValidCardCategory(req.Category) {
		return newValidationError("卡等级必须是 Classic、Infinite、Gold、Platinum 或 Business")
	}
	if req.InterestRate.IsNegative() || !decimalBetween(req.InterestRate, "0", "100") {
		return newValidationError("利率必须在 0 到 100 之间")
	}
	if req.MembershipFee.IsNegative() || !decimalBetween(req.MembershipFee, "0", "9999.99") {
		return newValidationError("年费必须在 0 到 9999.99 之间")
	}
	return nil
}

// Create 发卡，卡号唯一性由数据库唯一索引兜底
func (s *CardService) Create(ctx context.Context, req *CreateCardRequest) (*model.Card, error) {
	if err := validateCardInput(req); err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("查询客户失败: %w", err)
	}
	if !exists {
		return nil, repository.ErrClientNotFound
	}

	card := &model.Card{
		ClientID:      req.ClientID,
		CardNumber:    req.CardNumber,
		IssueDate:     req.IssueDate,
		LimitAmount:   req.LimitAmount,
		Network:       req.Network,
		Category:      req.Category,
		InterestRate:  req.InterestRate,
		MembershipFee: req.MembershipFee,
		Status:        model.ProductStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("卡号已被使用")
			}
			return fmt.Errorf("创建信用卡失败: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		log.Printf("[CardService] 发卡失败: %v", err)
		return nil, err
	}

	return card, nil
}

func (s *CardService) List(ctx context.Context) ([]*model.Card, error) {
	return s.cardRepo.List(ctx)
}

func (s *CardService) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	return s.cardRepo.GetByID(ctx, id)
}

func (s *CardService) Close(ctx context.Context, id int64) (bool, error) {
	return s.cardRepo.Close(ctx, id)
}
