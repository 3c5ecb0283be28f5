package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccountRequest() *CreateAccountRequest {
	return &CreateAccountRequest{
		ClientID:      1,
		AccountNumber: "ACC-0001-2025",
		Amount:        decimal.RequireFromString("100.00"),
	}
}

func TestValidateAccountInput(t *testing.T) {
	assert.NoError(t, validateAccountInput(validAccountRequest()))

	t.Run("账号过短", func(t *testing.T) {
		req := validAccountRequest()
		req.AccountNumber = "A1"
		assert.True(t, IsValidationError(validateAccountInput(req)))
	})

	t.Run("开户金额为负", func(t *testing.T) {
		req := validAccountRequest()
		req.Amount = decimal.RequireFromString("-1")
		assert.True(t, IsValidationError(validateAccountInput(req)))
	})

	t.Run("开户金额为零可以接受", func(t *testing.T) {
		req := validAccountRequest()
		req.Amount = decimal.Zero
		assert.NoError(t, validateAccountInput(req))
	})
}

func TestValidateAccountBeneficiaries(t *testing.T) {
	beneficiary := func(pct string) BeneficiaryInput {
		return BeneficiaryInput{
			FullName:     "Pedro Lopez",
			Relationship: "hijo",
			Percentage:   decimal.RequireFromString(pct),
		}
	}

	t.Run("比例之和等于100通过", func(t *testing.T) {
		req := validAccountRequest()
		req.Beneficiaries = []BeneficiaryInput{beneficiary("60"), beneficiary("40")}
		assert.NoError(t, validateAccountInput(req))
	})

	t.Run("比例之和不足100拒绝", func(t *testing.T) {
		req := validAccountRequest()
		req.Beneficiaries = []BeneficiaryInput{beneficiary("60"), beneficiary("30")}
		assert.True(t, IsValidationError(validateAccountInput(req)))
	})

	t.Run("比例之和超过100拒绝", func(t *testing.T) {
		req := validAccountRequest()
		req.Beneficiaries = []BeneficiaryInput{beneficiary("60"), beneficiary("50")}
		assert.True(t, IsValidationError(validateAccountInput(req)))
	})

	t.Run("单个受益人比例越界拒绝", func(t *testing.T) {
		req := validAccountRequest()
		req.Beneficiaries = []BeneficiaryInput{beneficiary("101")}
		assert.True(t, IsValidationError(validateAccountInput(req)))
	})

	t.Run("没有受益人也可以开户", func(t *testing.T) {
		assert.NoError(t, validateAccountInput(validAccountRequest()))
	})
}

func TestAccountCreateClientNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAccountService(db)

	// 客户不存在：COUNT 返回 0，后面不应该有任何写入
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.Create(context.Background(), validAccountRequest())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountCloseIdempotence(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAccountService(db)

	// 第一次：有一行从 active 变为 closed
	mock.ExpectExec("UPDATE `accounts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 第二次：条件更新不再命中任何行
	mock.ExpectExec("UPDATE `accounts`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	closed, err := svc.Close(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = svc.Close(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, closed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
