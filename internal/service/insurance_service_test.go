package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validInsuranceRequest() *CreateInsuranceRequest {
	return &CreateInsuranceRequest{
		ClientID:       1,
		PolicyNumber:   "POL-2025-0001",
		InsuranceType:  "vida",
		CoverageAmount: decimal.RequireFromString("50000.00"),
		FeeAmount:      decimal.RequireFromString("80.00"),
		StartDate:      "2025-01-01",
		EndDate:        "2026-01-01",
	}
}

func TestValidateInsuranceInput(t *testing.T) {
	assert.NoError(t, validateInsuranceInput(validInsuranceRequest()))

	tests := []struct {
		name   string
		mutate func(*CreateInsuranceRequest)
	}{
		{"保单号过短", func(r *CreateInsuranceRequest) { r.PolicyNumber = "P1" }},
		{"保额为零", func(r *CreateInsuranceRequest) { r.CoverageAmount = decimal.Zero }},
		{"保费为零", func(r *CreateInsuranceRequest) { r.FeeAmount = decimal.Zero }},
		{"起保日期格式错误", func(r *CreateInsuranceRequest) { r.StartDate = "01/01/2025" }},
		{"起保晚于终保", func(r *CreateInsuranceRequest) { r.StartDate, r.EndDate = "2026-01-01", "2025-01-01" }},
		{"起保等于终保", func(r *CreateInsuranceRequest) { r.EndDate = r.StartDate }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validInsuranceRequest()
			tc.mutate(req)
			assert.True(t, IsValidationError(validateInsuranceInput(req)))
		})
	}
}
