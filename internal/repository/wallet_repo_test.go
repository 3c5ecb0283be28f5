package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 账户投影只统计 active 账户，余额按存款减取款聚合
func TestWalletClientAccountsActiveOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletRepository(db)

	// SQL 形状校验：必须带 active 过滤和存取款 CASE 聚合
	mock.ExpectQuery(`a\.client_id = \? AND a\.status = 'active'`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_id", "account_number", "amount", "status", "current_balance",
		}).AddRow(1, 3, "ACC-0001-2025", "100.00", "active", "100.00"))

	rows, err := repo.ClientAccounts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ACC-0001-2025", rows[0].AccountNumber)
	assert.True(t, rows[0].CurrentBalance.Equal(decimal.RequireFromString("100.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 卡片投影：已用额度 = 支付合计，可用额度 = 静态额度减已用
func TestWalletClientCards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletRepository(db)

	mock.ExpectQuery(`c\.client_id = \? AND c\.status = 'active'`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_id", "card_number", "limit_amount", "status", "used_amount", "available_credit",
		}).AddRow(2, 3, "4111111111111111", "500.00", "active", "200.00", "300.00"))

	rows, err := repo.ClientCards(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].UsedAmount.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, rows[0].AvailableCredit.Equal(decimal.RequireFromString("300.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
