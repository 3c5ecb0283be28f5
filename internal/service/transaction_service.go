package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"bankoffice/internal/model"
	"bankoffice/internal/repository"
	"bankoffice/pkg/idgen"

	infralock "bankoffice/internal/infrastructure/lock"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================================
// 交易过账服务
// ============================================================================
//
// 过账状态机（任一步失败即拒绝）：
//   收单 → 字段校验 → 产品定位（active + 归属客户）→ 金额规则校验 → 落账
//
// 落账是一个数据库事务：产品余额变更 + 流水插入 + 发件箱插入，
// 三者同生共死。事务外层再套一把按（客户,产品）维度的 Redis 锁，
// 把同一产品的并发过账串行化。
//
// 已知缺口：目前只有储蓄账户会回写余额（存款加、取款减），
// 卡、贷款、保险的过账只记流水，不更新产品侧金额。
// ============================================================================

const (
	lockRetryInterval = 100 * time.Millisecond
	lockMaxRetries    = 50
)

type TransactionService struct {
	db          *gorm.DB
	redisClient *redis.Client // 为 nil 时跳过分布式锁（单测环境）
	topic       string

	accountRepo   *repository.AccountRepository
	cardRepo      *repository.CardRepository
	loanRepo      *repository.LoanRepository
	insuranceRepo *repository.InsuranceRepository
	transRepo     *repository.TransactionRepository
	outboxRepo    *repository.OutboxRepository
}

func NewTransactionService(db *gorm.DB, redisClient *redis.Client, topic string) *TransactionService {
	return &TransactionService{
		db:            db,
		redisClient:   redisClient,
		topic:         topic,
		accountRepo:   repository.NewAccountRepository(db),
		cardRepo:      repository.NewCardRepository(db),
		loanRepo:      repository.NewLoanRepository(db),
		insuranceRepo: repository.NewInsuranceRepository(db),
		transRepo:     repository.NewTransactionRepository(db),
		outboxRepo:    repository.NewOutboxRepository(db),
	}
}

type PostTransactionRequest struct {
	ReferenceID     int64           `json:"reference_id" binding:"required"`
	ReferenceType   string          `json:"reference_type" binding:"required"`
	ClientID        int64           `json:"client_id" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type" binding:"required"`
}

func validatePostInput(req *PostTransactionRequest) error {
	if req.ReferenceID <= 0 {
		return newValidationError("产品 ID 不合法")
	}
	if !model.ValidReferenceType(req.ReferenceType) {
		return newValidationError("产品类型必须是 account、card、loan 或 insurance")
	}
	if req.ClientID <= 0 {
		return newValidationError("客户 ID 不合法")
	}
	if !lenBetween(req.Description, 3, 256) {
		return newValidationError("交易摘要长度必须在 3 到 256 个字符之间")
	}
	if !req.Amount.IsPositive() || !decimalBetween(req.Amount, "0", "999999999.99") {
		return newValidationError("交易金额必须是 0 到 999999999.99 之间的正数")
	}
	if !model.ValidTransactionType(req.TransactionType) {
		return newValidationError("交易类型不在允许范围内")
	}
	return nil
}

// Post 过账
// createdBy 是操作员（柜员/员工）的用户 ID，由上层从令牌中取出
func (s *TransactionService) Post(ctx context.Context, req *PostTransactionRequest, createdBy int64) (*model.Transaction, error) {
	if err := validatePostInput(req); err != nil {
		return nil, err
	}

	// 按（客户,产品）维度串行化，挡住重复提交造成的超扣
	if s.redisClient != nil {
		postingLock := infralock.NewPostingLock(
			s.redisClient, req.ClientID, req.ReferenceID, req.ReferenceType,
			idgen.GenerateRequestID(),
		)
		if err := postingLock.Lock(ctx, lockRetryInterval, lockMaxRetries); err != nil {
			log.Printf("[TransactionService] 获取过账锁失败: client=%d %s/%d, err=%v",
				req.ClientID, req.ReferenceType, req.ReferenceID, err)
			return nil, fmt.Errorf("过账繁忙，请稍后重试: %w", err)
		}
		defer func() {
			if err := postingLock.Unlock(context.Background()); err != nil {
				log.Printf("[TransactionService] 释放过账锁失败: %v", err)
			}
		}()
	}

	trans := &model.Transaction{
		ReferenceID:     req.ReferenceID,
		ReferenceType:   req.ReferenceType,
		ClientID:        req.ClientID,
		Description:     req.Description,
		CreatedBy:       createdBy,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		TransactionCode: idgen.GenerateTransactionCode(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. 产品定位 + 金额规则 + 资金效果（加了 FOR UPDATE 行锁）
		if err := s.resolveAndApply(ctx, tx, req, trans); err != nil {
			return err
		}

		// 2. 写流水（只追加）
		if err := s.transRepo.Create(ctx, tx, trans); err != nil {
			return fmt.Errorf("写交易流水失败: %w", err)
		}

		// 3. 写发件箱，交易事件随事务一起落库
		payload, err := json.Marshal(trans)
		if err != nil {
			return fmt.Errorf("序列化交易事件失败: %w", err)
		}
		msg := &model.OutboxMessage{
			MessageKey: trans.TransactionCode,
			Topic:      s.topic,
			Payload:    string(payload),
			Status:     model.OutboxStatusPending,
		}
		if err := s.outboxRepo.Create(ctx, tx, msg); err != nil {
			return fmt.Errorf("写发件箱失败: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) || IsBusinessRuleError(err) {
			return nil, err
		}
		log.Printf("[TransactionService] 过账失败: client=%d %s/%d, err=%v",
			req.ClientID, req.ReferenceType, req.ReferenceID, err)
		return nil, err
	}

	return trans, nil
}

// resolveAndApply 定位产品、校验金额规则并施加资金效果
// 不存在、不归属该客户、已关闭，统一视为产品不可过账
func (s *TransactionService) resolveAndApply(ctx context.Context, tx *gorm.DB, req *PostTransactionRequest, trans *model.Transaction) error {
	switch req.ReferenceType {
	case model.ReferenceTypeAccount:
		account, err := s.accountRepo.GetActiveForUpdate(ctx, tx, req.ReferenceID, req.ClientID)
		if err != nil {
			return mapProductErr(err, repository.ErrAccountNotFound)
		}
		trans.ReferenceNumber = account.AccountNumber
		if req.TransactionType == model.TransactionTypeWithdrawal && req.Amount.GreaterThan(account.Amount) {
			return ErrInsufficientFunds
		}
		if delta := trans.SignedAmount(); !delta.IsZero() {
			if err := s.accountRepo.ApplyDelta(ctx, tx, account.ID, delta); err != nil {
				return fmt.Errorf("更新账户余额失败: %w", err)
			}
		}

	case model.ReferenceTypeCard:
		card, err := s.cardRepo.GetActiveForUpdate(ctx, tx, req.ReferenceID, req.ClientID)
		if err != nil {
			return mapProductErr(err, repository.ErrCardNotFound)
		}
		trans.ReferenceNumber = card.CardNumber
		// 额度校验用的是静态额度而非剩余额度
		if req.TransactionType == model.TransactionTypePayment && req.Amount.GreaterThan(card.LimitAmount) {
			return ErrLimitExceeded
		}
		// TODO: 卡片目前没有已用额度字段，过账只记流水不回写卡片侧金额

	case model.ReferenceTypeLoan:
		loan, err := s.loanRepo.GetActiveForUpdate(ctx, tx, req.ReferenceID, req.ClientID)
		if err != nil {
			return mapProductErr(err, repository.ErrLoanNotFound)
		}
		trans.ReferenceNumber = loan.LoanNumber
		if req.TransactionType == model.TransactionTypePayment && req.Amount.LessThan(loan.MonthlyPayment) {
			return ErrPaymentTooLow
		}
		// TODO: 还款不减少贷款余额，剩余本金只能从流水聚合得到

	case model.ReferenceTypeInsurance:
		insurance, err := s.insuranceRepo.GetActiveForUpdate(ctx, tx, req.ReferenceID, req.ClientID)
		if err != nil {
			return mapProductErr(err, repository.ErrInsuranceNotFound)
		}
		trans.ReferenceNumber = insurance.PolicyNumber
		if req.TransactionType == model.TransactionTypePayment && req.Amount.LessThan(insurance.FeeAmount) {
			return ErrPaymentTooLow
		}
		// TODO: 缴费同样只记流水，保单侧没有累计缴费字段
	}
	return nil
}

// mapProductErr 把各产品仓储的"未找到"统一映射为过账层的产品不可用
func mapProductErr(err, notFound error) error {
	if errors.Is(err, notFound) {
		return ErrProductNotFound
	}
	return fmt.Errorf("查询产品失败: %w", err)
}

func (s *TransactionService) ListByClient(ctx context.Context, clientID int64) ([]*model.Transaction, error) {
	return s.transRepo.ListByClient(ctx, clientID)
}

func (s *TransactionService) ListByProduct(ctx context.Context, referenceID int64, referenceType string) ([]*model.Transaction, error) {
	if !model.ValidReferenceType(referenceType) {
		return nil, newValidationError("产品类型必须是 account、card、loan 或 insurance")
	}
	return s.transRepo.ListByProduct(ctx, referenceID, referenceType)
}
