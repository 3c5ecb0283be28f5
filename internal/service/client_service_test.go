package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validClientRequest() *CreateClientRequest {
	return &CreateClientRequest{
		Username:         "maria.lopez",
		Password:         "secret123",
		FullName:         "Maria Lopez Garcia",
		MaritalStatus:    "married",
		IdentityDocument: "V-12345678",
		BirthDate:        "1990-05-20",
		Age:              35,
		Occupation:       "Contadora",
		MonthlyIncome:    decimal.RequireFromString("1500.00"),
	}
}

func TestValidateClientInput(t *testing.T) {
	assert.NoError(t, validateClientInput(validClientRequest()))

	tests := []struct {
		name   string
		mutate func(*CreateClientRequest)
	}{
		{"用户名过短", func(r *CreateClientRequest) { r.Username = "ab" }},
		{"密码过短", func(r *CreateClientRequest) { r.Password = "12345" }},
		{"姓名过短", func(r *CreateClientRequest) { r.FullName = "ab" }},
		{"婚姻状况不在枚举内", func(r *CreateClientRequest) { r.MaritalStatus = "separated" }},
		{"证件号过短", func(r *CreateClientRequest) { r.IdentityDocument = "V-1" }},
		{"出生日期格式错误", func(r *CreateClientRequest) { r.BirthDate = "20/05/1990" }},
		{"年龄过小", func(r *CreateClientRequest) { r.Age = 17 }},
		{"年龄过大", func(r *CreateClientRequest) { r.Age = 101 }},
		{"职业过短", func(r *CreateClientRequest) { r.Occupation = "ab" }},
		{"月收入为零", func(r *CreateClientRequest) { r.MonthlyIncome = decimal.Zero }},
		{"月收入为负", func(r *CreateClientRequest) { r.MonthlyIncome = decimal.RequireFromString("-1") }},
		{"月收入超上限", func(r *CreateClientRequest) { r.MonthlyIncome = decimal.RequireFromString("1000000") }},
		{"可选地址过短", func(r *CreateClientRequest) { r.AddressCity = "ab" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validClientRequest()
			tc.mutate(req)
			err := validateClientInput(req)
			assert.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}
