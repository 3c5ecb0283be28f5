package service

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// 校验小工具：按字符数（而非字节数）判断长度

func lenBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func optionalLenBetween(s string, min, max int) bool {
	if s == "" {
		return true
	}
	return lenBetween(s, min, max)
}

func decimalBetween(d decimal.Decimal, min, max string) bool {
	return d.GreaterThanOrEqual(decimal.RequireFromString(min)) &&
		d.LessThanOrEqual(decimal.RequireFromString(max))
}

// validDate YYYY-MM-DD
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
