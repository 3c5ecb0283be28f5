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

type InsuranceService struct {
	db            *gorm.DB
	clientRepo    *repository.ClientRepository
	insuranceRepo *repository.InsuranceRepository
}

func NewInsuranceService(db *gorm.DB) *InsuranceService {
	return &InsuranceService{
		db:            db,
		clientRepo:    repository.NewClientRepository(db),
		insuranceRepo: repository.NewInsuranceRepository(db),
	}
}

type CreateInsuranceRequest struct {
	ClientID       int64           `json:"client_id" binding:"required"`
	PolicyNumber   string          `json:"policy_number" binding:"required"`
	InsuranceType  string          `json:"insurance_type" binding:"required"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	FeeAmount      decimal.Decimal `json:"fee_amount"`
	StartDate      string          `json:"start_date" binding:"required"`
	EndDate        string          `json:"end_date" binding:"required"`
}

func validateInsuranceInput(req *CreateInsuranceRequest) error {
	if req.ClientID <= 0 {
		return newValidationError("客户 ID 不合法")
	}
	if !lenBetween(req.PolicyNumber, 5, 20) {
		return newValidationError("保单号长度必须在 5 到 20 个字符之间")
	}
	if !lenBetween(req.InsuranceType, 3, 50) {
		return newValidationError("险种长度必须在 3 到 50 个字符之间")
	}
	if !req.CoverageAmount.IsPositive() || !decimalBetween(req.CoverageAmount, "0", "999999999.99") {
		return newValidationError("保额必须是 0 到 999999999.99 之间的正数")
	}
	if !req.FeeAmount.IsPositive() || !decimalBetween(req.FeeAmount, "0", "999999.99") {
		return newValidationError("每期保费必须是 0 到 999999.99 之间的正数")
	}
	if !validDate(req.StartDate) {
		return newValidationError("起保日期格式必须为 YYYY-MM-DD")
	}
	if !validDate(req.EndDate) {
		return newValidationError("终保日期格式必须为 YYYY-MM-DD")
	}
	if req.StartDate >= req.EndDate {
		return newValidationError("起保日期必须早于终保日期")
	}
	return nil
}

// Create 承保，保单号唯一性由数据库唯一索引兜底
func (s *InsuranceService) Create(ctx context.Context, req *CreateInsuranceRequest) (*model.Insurance, error) {
	if err := validateInsuranceInput(req); err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("查询客户失败: %w", err)
	}
	if !exists {
		return nil, repository.ErrClientNotFound
	}

	insurance := &model.Insurance{
		ClientID:       req.ClientID,
		PolicyNumber:   req.PolicyNumber,
		InsuranceType:  req.InsuranceType,
		CoverageAmount: req.CoverageAmount,
		FeeAmount:      req.FeeAmount,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         model.ProductStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.insuranceRepo.Create(ctx, tx, insurance); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("保单号已被使用")
			}
			return fmt.Errorf("创建保单失败: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		log.Printf("[InsuranceService] 承保失败: %v", err)
		return nil, err
	}

	return insurance, nil
}

func (s *InsuranceService) List(ctx context.Context) ([]*repository.InsuranceRow, error) {
	return s.insuranceRepo.List(ctx)
}

func (s *InsuranceService) GetByID(ctx context.Context, id int64) (*repository.InsuranceRow, error) {
	return s.insuranceRepo.GetByID(ctx, id)
}

func (s *InsuranceService) Close(ctx context.Context, id int64) (bool, error) {
	return s.insuranceRepo.Close(ctx, id)
}
