package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaritalStatusSingle   = "single"
	MaritalStatusMarried  = "married"
	MaritalStatusDivorced = "divorced"
	MaritalStatusWidowed  = "widowed"
)

// ValidMaritalStatus 婚姻状况是否在枚举范围内
func ValidMaritalStatus(s string) bool {
	switch s {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed:
		return true
	}
	return false
}

// Client 客户档案表
// 每个客户对应一个 users 登录账号，名下可持有多个金融产品
type Client struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64           `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName         string          `gorm:"type:varchar(100);not null" json:"full_name"`
	MaritalStatus    string          `gorm:"type:varchar(20);not null" json:"marital_status"`
	IdentityDocument string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"identity_document"`
	BirthDate        string          `gorm:"type:varchar(10);not null" json:"birth_date"` // YYYY-MM-DD
	Age              int             `gorm:"not null" json:"age"`
	AddressStreet    string          `gorm:"type:varchar(100)" json:"address_street,omitempty"`
	AddressHouse     string          `gorm:"type:varchar(20)" json:"address_house,omitempty"`
	AddressCity      string          `gorm:"type:varchar(50)" json:"address_city,omitempty"`
	AddressState     string          `gorm:"type:varchar(50)" json:"address_state,omitempty"`
	Occupation       string          `gorm:"type:varchar(100);not null" json:"occupation"`
	MonthlyIncome    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_income"`
	Emails           string          `gorm:"type:varchar(255)" json:"emails,omitempty"`
	Phones           string          `gorm:"type:varchar(50)" json:"phones,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}
