package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan 贷款表
// monthly_payment 是每期最低还款额，过账时用它校验还款下限
type Loan struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID         int64           `gorm:"index;not null" json:"client_id"`
	LoanNumber       string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"loan_number"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category         string          `gorm:"type:varchar(50);not null" json:"category"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	PaymentFrequency string          `gorm:"type:varchar(20);not null" json:"payment_frequency"`
	TermMonths       int             `gorm:"not null" json:"term_months"`
	MonthlyPayment   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_payment"`
	Status           string          `gorm:"type:varchar(10);not null;default:active" json:"status"`
	ClosedAt         *time.Time      `json:"closed_at,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string {
	return "loans"
}
