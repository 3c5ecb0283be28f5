package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insurance 保险保单表
// fee_amount 是每期保费，过账时用它校验缴费下限
type Insurance struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID       int64           `gorm:"index;not null" json:"client_id"`
	PolicyNumber   string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"policy_number"`
	InsuranceType  string          `gorm:"type:varchar(50);not null" json:"insurance_type"`
	CoverageAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"coverage_amount"`
	FeeAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"fee_amount"`
	StartDate      string          `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate        string          `gorm:"type:varchar(10);not null" json:"end_date"`
	Status         string          `gorm:"type:varchar(10);not null;default:active" json:"status"`
	ClosedAt       *time.Time      `json:"closed_at,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Insurance) TableName() string {
	return "insurances"
}
