package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProductStatusActive = "active"
	ProductStatusClosed = "closed"
)

// Account 储蓄账户表
// amount 为当前余额，只能由交易过账更新（存款加、取款减）
type Account struct {
	ID            int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID      int64                `gorm:"index;not null" json:"client_id"`
	AccountNumber string               `gorm:"type:varchar(20);uniqueIndex;not null" json:"account_number"`
	Amount        decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status        string               `gorm:"type:varchar(10);not null;default:active" json:"status"`
	ClosedAt      *time.Time           `json:"closed_at,omitempty"`
	Beneficiaries []AccountBeneficiary `gorm:"foreignKey:AccountID" json:"beneficiaries,omitempty"`
	CreatedAt     time.Time            `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountBeneficiary 账户受益人表
// 建户时一次性写入，同一账户所有受益人的 percentage 之和必须等于 100
type AccountBeneficiary struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID    int64           `gorm:"index;not null" json:"account_id"`
	FullName     string          `gorm:"type:varchar(150);not null" json:"full_name"`
	Relationship string          `gorm:"type:varchar(50);not null" json:"relationship"`
	Percentage   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (AccountBeneficiary) TableName() string {
	return "account_beneficiaries"
}
