package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidReferenceType(t *testing.T) {
	for _, rt := range []string{ReferenceTypeAccount, ReferenceTypeCard, ReferenceTypeLoan, ReferenceTypeInsurance} {
		assert.True(t, ValidReferenceType(rt), rt)
	}
	assert.False(t, ValidReferenceType("wallet"))
	assert.False(t, ValidReferenceType(""))
	assert.False(t, ValidReferenceType("Account"))
}

func TestValidTransactionType(t *testing.T) {
	valid := []string{
		TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer,
		TransactionTypePayment, TransactionTypeFee, TransactionTypeInterest,
		TransactionTypePenalty, TransactionTypeAdjustment,
	}
	for _, tt := range valid {
		assert.True(t, ValidTransactionType(tt), tt)
	}
	assert.False(t, ValidTransactionType("refund"))
	assert.False(t, ValidTransactionType(""))
}

func TestSignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("150.00")

	tests := []struct {
		transactionType string
		want            string
	}{
		{TransactionTypeDeposit, "150"},
		{TransactionTypeWithdrawal, "-150"},
		{TransactionTypePayment, "0"},
		{TransactionTypeTransfer, "0"},
		{TransactionTypeFee, "0"},
		{TransactionTypeInterest, "0"},
		{TransactionTypePenalty, "0"},
		{TransactionTypeAdjustment, "0"},
	}
	for _, tc := range tests {
		trans := &Transaction{Amount: amount, TransactionType: tc.transactionType}
		assert.True(t, trans.SignedAmount().Equal(decimal.RequireFromString(tc.want)),
			"%s: got %s", tc.transactionType, trans.SignedAmount())
	}
}
