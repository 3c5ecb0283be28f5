package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLenBetween(t *testing.T) {
	assert.True(t, lenBetween("abc", 3, 10))
	assert.False(t, lenBetween("ab", 3, 10))
	assert.False(t, lenBetween("abcdefghijk", 3, 10))
	// 按字符数而不是字节数
	assert.True(t, lenBetween("张三丰", 3, 10))
}

func TestOptionalLenBetween(t *testing.T) {
	assert.True(t, optionalLenBetween("", 3, 10))
	assert.True(t, optionalLenBetween("abc", 3, 10))
	assert.False(t, optionalLenBetween("ab", 3, 10))
}

func TestDecimalBetween(t *testing.T) {
	assert.True(t, decimalBetween(decimal.RequireFromString("50.5"), "0", "100"))
	assert.True(t, decimalBetween(decimal.Zero, "0", "100"))
	assert.True(t, decimalBetween(decimal.RequireFromString("100"), "0", "100"))
	assert.False(t, decimalBetween(decimal.RequireFromString("100.01"), "0", "100"))
	assert.False(t, decimalBetween(decimal.RequireFromString("-0.01"), "0", "100"))
}

func TestValidDate(t *testing.T) {
	assert.True(t, validDate("1990-05-20"))
	assert.False(t, validDate("1990-5-20"))
	assert.False(t, validDate("20/05/1990"))
	assert.False(t, validDate("1990-13-01"))
	assert.False(t, validDate(""))
}
