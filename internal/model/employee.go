package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee 员工档案表
type Employee struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64           `gorm:"uniqueIndex;not null" json:"user_id"`
	Code             string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"` // 员工工号
	FullName         string          `gorm:"type:varchar(100);not null" json:"full_name"`
	MaritalStatus    string          `gorm:"type:varchar(20);not null" json:"marital_status"`
	IdentityDocument string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"identity_document"`
	BirthDate        string          `gorm:"type:varchar(10);not null" json:"birth_date"`
	Age              int             `gorm:"not null" json:"age"`
	AddressStreet    string          `gorm:"type:varchar(100)" json:"address_street,omitempty"`
	AddressHouse     string          `gorm:"type:varchar(20)" json:"address_house,omitempty"`
	AddressCity      string          `gorm:"type:varchar(50)" json:"address_city,omitempty"`
	AddressState     string          `gorm:"type:varchar(50)" json:"address_state,omitempty"`
	Position         string          `gorm:"type:varchar(50);not null" json:"position"`
	Department       string          `gorm:"type:varchar(50);not null" json:"department"`
	Salary           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"salary"`
	Profession       string          `gorm:"type:varchar(100)" json:"profession,omitempty"`
	Emails           string          `gorm:"type:varchar(255)" json:"emails,omitempty"`
	Phones           string          `gorm:"type:varchar(50)" json:"phones,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
