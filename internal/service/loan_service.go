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

type LoanService struct {
	db         *gorm.DB
	clientRepo *repository.ClientRepository
	loanRepo   *repository.LoanRepository
}

func NewLoanService(db *gorm.DB) *LoanService {
	return &LoanService{
		db:         db,
		clientRepo: repository.NewClientRepository(db),
		loanRepo:   repository.NewLoanRepository(db),
	}
}

type CreateLoanRequest struct {
	ClientID         int64           `json:"client_id" binding:"required"`
	LoanNumber       string          `json:"loan_number" binding:"required"`
	Amount           decimal.Decimal `json:"amount"`
	Category         string          `json:"category" binding:"required"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	PaymentFrequency string          `json:"payment_frequency" binding:"required"`
	TermMonths       int             `json:"term_months"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
}

func validateLoanInput(req *CreateLoanRequest) error {
	if req.ClientID <= 0 {
		return newValidationError("客户 ID 不合法")
	}
	if !lenBetween(req.LoanNumber, 5, 20) {
		return newValidationError("贷款编号长度必须在 5 到 20 个字符之间")
	}
	if !req.Amount.IsPositive() || !decimalBetween(req.Amount, "0", "999999999.99") {
		return newValidationError("贷款金额必须是 0 到 999999999.99 之间的正数")
	}
	if !lenBetween(req.Category, 3, 50) {
		return newValidationError("贷款类别长度必须在 3 到 50 个字符之间")
	}
	if req.InterestRate.IsNegative() || !decimalBetween(req.InterestRate, "0", "100") {
		return newValidationError("利率必须在 0 到 100 之间")
	}
	if !lenBetween(req.PaymentFrequency, 3, 20) {
		return newValidationError("还款频率长度必须在 3 到 20 个字符之间")
	}
	if req.TermMonths <= 0 || req.TermMonths > 600 {
		return newValidationError("贷款期数必须在 1 到 600 个月之间")
	}
	if !req.MonthlyPayment.IsPositive() || !decimalBetween(req.MonthlyPayment, "0", "999999.99") {
		return newValidationError("每期还款额必须是 0 到 999999.99 之间的正数")
	}
	return nil
}

// Create 放贷，贷款编号唯一性由数据库唯一索引兜底
func (s *LoanService) Create(ctx context.Context, req *CreateLoanRequest) (*model.Loan, error) {
	if err := validateLoanInput(req); err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("查询客户失败: %w", err)
	}
	if !exists {
		return nil, repository.ErrClientNotFound
	}

	loan := &model.Loan{
		ClientID:         req.ClientID,
		LoanNumber:       req.LoanNumber,
		Amount:           req.Amount,
		Category:         req.Category,
		InterestRate:     req.InterestRate,
		PaymentFrequency: req.PaymentFrequency,
		TermMonths:       req.TermMonths,
		MonthlyPayment:   req.MonthlyPayment,
		Status:           model.ProductStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.loanRepo.Create(ctx, tx, loan); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("贷款编号已被使用")
			}
			return fmt.Errorf("创建贷款失败: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		log.Printf("[LoanService] 放贷失败: %v", err)
		return nil, err
	}

	return loan, nil
}

func (s *LoanService) List(ctx context.Context) ([]*repository.LoanRow, error) {
	return s.loanRepo.List(ctx)
}

func (s *LoanService) GetByID(ctx context.Context, id int64) (*repository.LoanRow, error) {
	return s.loanRepo.GetByID(ctx, id)
}

func (s *LoanService) Close(ctx context.Context, id int64) (bool, error) {
	return s.loanRepo.Close(ctx, id)
}
