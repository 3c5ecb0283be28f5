package service

import (
	"context"
	"testing"
	"time"

	"bankoffice/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpireSeconds: 3600,
		},
	}
}

func userRow(t *testing.T, username, password, role string, active bool) *sqlmock.Rows {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "is_active", "created_at"}).
		AddRow(5, username, hash, role, active, time.Now())
}

func TestLoginIssuesParsableToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(t, "cashier01", "secret123", "cashier", true))

	token, err := svc.Login(context.Background(), &LoginRequest{Username: "cashier01", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, "cashier01", claims.Username)
	assert.Equal(t, "cashier", claims.Role)
	assert.Zero(t, claims.ClientID)
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(t, "cashier01", "secret123", "cashier", true))

	_, err := svc.Login(context.Background(), &LoginRequest{Username: "cashier01", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login(context.Background(), &LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(t, "cashier01", "secret123", "cashier", false))

	_, err := svc.Login(context.Background(), &LoginRequest{Username: "cashier01", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.ParseToken("eyJhbGciOiJIUzI1NiJ9.bogus.signature")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(t, "cashier01", "secret123", "cashier", true))

	token, err := svc.Login(context.Background(), &LoginRequest{Username: "cashier01", Password: "secret123"})
	require.NoError(t, err)

	other := NewAuthService(db, &config.Config{JWT: config.JWTConfig{Secret: "another-secret", ExpireSeconds: 3600}})
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}
