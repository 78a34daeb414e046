package errors

import (
	"errors"
	"fmt"
)

// ========== 错误码常量定义 ==========

// CodeSuccess 成功码
const (
	CodeSuccess = 200
)

// HTTP层错误码 (400-599)
const (
	CodeInvalidParam = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeServerError  = 500
)

// ========== 业务错误 ==========

// 统一的业务错误语义，服务层返回这些错误，
// HTTP层负责映射为错误码与用户可见消息。
var (
	// ErrUnauthenticated 未登录或会话已失效
	ErrUnauthenticated = errors.New("未登录或会话已失效")
	// ErrForbidden 已登录但权限不足
	ErrForbidden = errors.New("权限不足")
	// ErrNotFound 记录不存在或已被逻辑删除
	ErrNotFound = errors.New("记录不存在")
	// ErrDuplicateKey 唯一字段冲突
	ErrDuplicateKey = errors.New("唯一字段值已存在")
	// ErrVersionConflict 乐观锁版本不匹配
	ErrVersionConflict = errors.New("数据已被其他用户修改，请刷新后重试")
	// ErrInvalidInput 请求内容不符合约束
	ErrInvalidInput = errors.New("请求参数错误")

	// 登录失败的具体原因，仅用于日志，对外统一为通用消息
	ErrUserNotFound     = errors.New("用户不存在")
	ErrPasswordMismatch = errors.New("密码错误")
	ErrAccountDisabled  = errors.New("账号未启用")
)

// DuplicateKeyError 携带冲突字段信息的唯一性错误
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s 已存在: %s", e.Field, e.Value)
}

// Is 使 errors.Is(err, ErrDuplicateKey) 成立
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// InvalidInput 构造带说明的参数错误，errors.Is(err, ErrInvalidInput) 成立
func InvalidInput(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}

// Storage 包装存储层错误，保留细节供日志使用
func Storage(op string, err error) error {
	return fmt.Errorf("存储操作失败 %s: %w", op, err)
}
