package service

import (
	"errors"
	"fmt"
)

// 业务规则拒绝：都是调用方可纠正的失败，不做重试
var (
	ErrProductNotFound    = errors.New("金融产品不存在、不属于该客户或未处于激活状态")
	ErrInsufficientFunds  = errors.New("账户余额不足")
	ErrLimitExceeded      = errors.New("金额超过卡片额度")
	ErrPaymentTooLow      = errors.New("金额低于该产品的每期应缴额")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserInactive       = errors.New("用户已停用")
	ErrNoClientProfile    = errors.New("当前用户没有关联的客户档案")
)

// ValidationError 字段校验失败
// 校验采用快速失败：遇到第一个不合法字段立即返回，不聚合全部错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError 判断是否为字段校验失败
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsBusinessRuleError 判断是否为业务规则拒绝（对应 HTTP 400）
func IsBusinessRuleError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrLimitExceeded) ||
		errors.Is(err, ErrPaymentTooLow)
}
