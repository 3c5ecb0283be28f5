package service

import (
	"context"
	"errors"
	"testing"

	"bankoffice/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "bankoffice.transaction.posted"

func postRequest(refType, transType, amount string) *PostTransactionRequest {
	return &PostTransactionRequest{
		ReferenceID:     1,
		ReferenceType:   refType,
		ClientID:        1,
		Description:     "柜面操作",
		Amount:          decimal.RequireFromString(amount),
		TransactionType: transType,
	}
}

func TestValidatePostInput(t *testing.T) {
	assert.NoError(t, validatePostInput(postRequest(model.ReferenceTypeAccount, model.TransactionTypeDeposit, "100.00")))

	tests := []struct {
		name   string
		mutate func(*PostTransactionRequest)
	}{
		{"产品ID不合法", func(r *PostTransactionRequest) { r.ReferenceID = 0 }},
		{"产品类型不在枚举内", func(r *PostTransactionRequest) { r.ReferenceType = "wallet" }},
		{"客户ID不合法", func(r *PostTransactionRequest) { r.ClientID = -1 }},
		{"摘要过短", func(r *PostTransactionRequest) { r.Description = "ab" }},
		{"金额为零", func(r *PostTransactionRequest) { r.Amount = decimal.Zero }},
		{"金额为负", func(r *PostTransactionRequest) { r.Amount = decimal.RequireFromString("-10") }},
		{"交易类型不在枚举内", func(r *PostTransactionRequest) { r.TransactionType = "refund" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := postRequest(model.ReferenceTypeAccount, model.TransactionTypeDeposit, "100.00")
			tc.mutate(req)
			assert.True(t, IsValidationError(validatePostInput(req)))
		})
	}
}

func accountRow(amount string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "client_id", "account_number", "amount", "status"}).
		AddRow(1, 1, "ACC-0001-2025", amount, "active")
}

// 存款成功：余额更新、流水、发件箱三者在同一事务内提交
func TestPostDepositCommitsAtomically(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTransactionService(db, nil, testTopic)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(accountRow("100.00"))
	mock.ExpectExec("UPDATE `accounts` SET `amount`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO `outbox_message`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	trans, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeAccount, model.TransactionTypeDeposit, "50.00"), 9)
	require.NoError(t, err)
	assert.Equal(t, "ACC-0001-2025", trans.ReferenceNumber)
	assert.Equal(t, int64(9), trans.CreatedBy)
	assert.NotEmpty(t, trans.TransactionCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 账户余额只受存款和取款影响：支付只记流水，不产生 UPDATE
// 所以即使支付金额超过余额也能过账，余额保持不变
func TestPostAccountPaymentLeavesBalanceUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTransactionService(db, nil, testTopic)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(accountRow("100.00"))
	// 没有 UPDATE accounts 的期望：出现 UPDATE 会让 mock 报错
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO `outbox_message`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	trans, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeAccount, model.TransactionTypePayment, "150.00"), 9)
	require.NoError(t, err)
	assert.True(t, trans.SignedAmount().IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 余额不足：事务回滚，不产生任何写入
func TestPostWithdrawalInsufficientFunds(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTransactionService(db, nil, testTopic)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(accountRow("100.00"))
	mock.ExpectRollback()

	_, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeAccount, model.TransactionTypeWithdrawal, "150.00"), 9)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 已关闭（或不归属该客户）的产品查不到行，统一拒绝为产品不可过账
func TestPostClosedProductRejected(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTransactionService(db, nil, testTopic)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `accounts` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeAccount, model.TransactionTypeDeposit, "50.00"), 9)
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 卡支付按静态额度校验：等于额度放行，超过额度拒绝
func TestPostCardPaymentLimit(t *testing.T) {
	cardRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "client_id", "card_number", "limit_amount", "status"}).
			AddRow(1, 1, "4111111111111111", "500.00", "active")
	}

	t.Run("等于额度放行", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewTransactionService(db, nil, testTopic)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT .* FROM `cards` .*FOR UPDATE").
			WillReturnRows(cardRow())
		// 卡没有余额回写，只有流水和事件
		mock.ExpectExec("INSERT INTO `transactions`").
			WillReturnResult(sqlmock.NewResult(10, 1))
		mock.ExpectExec("INSERT INTO `outbox_message`").
			WillReturnResult(sqlmock.NewResult(11, 1))
		mock.ExpectCommit()

		trans, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeCard, model.TransactionTypePayment, "500.00"), 9)
		require.NoError(t, err)
		assert.Equal(t, "4111111111111111", trans.ReferenceNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("超过额度拒绝", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewTransactionService(db, nil, testTopic)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT .* FROM `cards` .*FOR UPDATE").
			WillReturnRows(cardRow())
		mock.ExpectRollback()

		_, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeCard, model.TransactionTypePayment, "501.00"), 9)
		require.ErrorIs(t, err, ErrLimitExceeded)
	})
}

// 贷款还款低于每期最低还款额拒绝
func TestPostLoanPaymentTooLow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTransactionService(db, nil, testTopic)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `loans` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "loan_number", "monthly_payment", "status"}).
			AddRow(1, 1, "LN-2025-0001", "350.00", "active"))
	mock.ExpectRollback()

	_, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeLoan, model.TransactionTypePayment, "349.99"), 9)
	require.ErrorIs(t, err, ErrPaymentTooLow)
}

// 保险缴费低于每期保费拒绝（与贷款共用下限拒绝）
func TestPostInsurancePaymentBelowFee(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTransactionService(db, nil, testTopic)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `insurances` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "policy_number", "fee_amount", "status"}).
			AddRow(1, 1, "POL-2025-0001", "80.00", "active"))
	mock.ExpectRollback()

	_, err := svc.Post(context.Background(), postRequest(model.ReferenceTypeInsurance, model.TransactionTypePayment, "79.99"), 9)
	require.ErrorIs(t, err, ErrPaymentTooLow)
}

func TestIsBusinessRuleError(t *testing.T) {
	assert.True(t, IsBusinessRuleError(ErrInsufficientFunds))
	assert.True(t, IsBusinessRuleError(ErrLimitExceeded))
	assert.True(t, IsBusinessRuleError(ErrPaymentTooLow))
	assert.False(t, IsBusinessRuleError(ErrProductNotFound))
	assert.False(t, IsBusinessRuleError(errors.New("其他错误")))
}
