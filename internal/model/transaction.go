package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// 交易枚举
// ============================================================================

const (
	ReferenceTypeAccount   = "account"
	ReferenceTypeCard      = "card"
	ReferenceTypeLoan      = "loan"
	ReferenceTypeInsurance = "insurance"
)

const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTransfer   = "transfer"
	TransactionTypePayment    = "payment"
	TransactionTypeFee        = "fee"
	TransactionTypeInterest   = "interest"
	TransactionTypePenalty    = "penalty"
	TransactionTypeAdjustment = "adjustment"
)

// ValidReferenceType 产品类型是否在枚举范围内
func ValidReferenceType(s string) bool {
	switch s {
	case ReferenceTypeAccount, ReferenceTypeCard, ReferenceTypeLoan, ReferenceTypeInsurance:
		return true
	}
	return false
}

// ValidTransactionType 交易类型是否在枚举范围内
func ValidTransactionType(s string) bool {
	switch s {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer,
		TransactionTypePayment, TransactionTypeFee, TransactionTypeInterest,
		TransactionTypePenalty, TransactionTypeAdjustment:
		return true
	}
	return false
}

// ============================================================================
// 交易流水实体
// ============================================================================

// Transaction 交易流水表
// 流水表设计原则：只追加，不修改，不删除，保证审计可追溯。
// 金额恒为正数，资金方向由 transaction_type 决定。
// reference_id + reference_type 指向具体产品（弱引用，查询时解析）。
type Transaction struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceNumber string          `gorm:"type:varchar(20);not null" json:"reference_number"` // 产品业务编号
	ReferenceID     int64           `gorm:"index;not null" json:"reference_id"`
	ReferenceType   string          `gorm:"type:varchar(10);index;not null" json:"reference_type"`
	ClientID        int64           `gorm:"index;not null" json:"client_id"`
	Description     string          `gorm:"type:varchar(256);not null" json:"description"`
	CreatedBy       int64           `gorm:"not null" json:"created_by"` // 操作员工ID
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	TransactionCode string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"transaction_code"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// SignedAmount 带符号的资金效果
// 只有存款和取款改变账户余额：存款为正、取款为负；
// 其余类型（含支付）不回写余额，返回零
func (t *Transaction) SignedAmount() decimal.Decimal {
	switch t.TransactionType {
	case TransactionTypeDeposit:
		return t.Amount
	case TransactionTypeWithdrawal:
		return t.Amount.Neg()
	}
	return decimal.Zero
}
