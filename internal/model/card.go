package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CardNetworkVisa       = "Visa"
	CardNetworkMasterCard = "MasterCard"
)

// CardCategories 发卡等级枚举
var CardCategories = []string{"Classic", "Infinite", "Gold", "Platinum", "Business"}

// ValidCardNetwork 卡组织是否合法
func ValidCardNetwork(s string) bool {
	return s == CardNetworkVisa || s == CardNetworkMasterCard
}

// ValidCardCategory 卡等级是否合法
func ValidCardCategory(s string) bool {
	for _, c := range CardCategories {
		if s == c {
			return true
		}
	}
	return false
}

// Card 信用卡表
type Card struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID      int64           `gorm:"index;not null" json:"client_id"`
	CardNumber    string          `gorm:"type:varchar(19);uniqueIndex;not null" json:"card_number"`
	IssueDate     string          `gorm:"type:varchar(10);not null" json:"issue_date"`
	LimitAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"limit_amount"`
	Network       string          `gorm:"type:varchar(20);not null" json:"network"`
	Category      string          `gorm:"type:varchar(20);not null" json:"category"`
	InterestRate  decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	MembershipFee decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"membership_fee"`
	Status        string          `gorm:"type:varchar(10);not null;default:active" json:"status"`
	ClosedAt      *time.Time      `json:"closed_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}
