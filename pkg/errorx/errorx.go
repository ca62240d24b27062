package errorx

import (
	"errors"
	"fmt"
)

// CodeError 带业务错误码的自定义错误
// 实现了 error 接口，支持 %w 包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  int    // 业务错误码
	Msg   string // 错误消息
	cause error  // 被包装的底层错误
}

// Error 实现 Go 标准 error 接口
// 当存在底层错误时，返回格式为 "消息: 底层错误"；否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 实现 errors.Unwrap 接口，支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New 创建一个新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加业务错误码和消息
// 用法: errorx.Wrap(err, CodeNotFound, "contact not found")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 包装底层错误，支持格式化消息
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 从错误中提取业务错误码，如果不是 CodeError 则返回默认码
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// 业务状态码常量定义
// 每个错误码对应 API 响应中的一个稳定 errType 标签（见 handler/response.go）
const (
	CodeSuccess         = 1000 // 成功
	CodeInvalidRequest  = 1001 // 请求方法错误
	CodeInvalidJson     = 1002 // JSON 解析失败
	CodeInvalidSchema   = 1003 // 缺少必填字段或字段类型错误
	CodeInvalidInput    = 1004 // 字段值不满足业务约束
	CodeUserExist       = 1005 // 用户名已存在
	CodeUserNotExist    = 1006 // 用户不存在
	CodeInvalidPassword = 1007 // 密码错误
	CodeUnauthorized    = 1008 // 未授权/认证失败
	CodeContactNotExist = 1009 // 联系人不存在（或不属于当前用户）
	CodeContactExists   = 1010 // 联系人 email/phone 重复
	CodeNotFound        = 1011 // 资源不存在（存储层通用）
	CodeServerBusy      = 1012 // 服务繁忙
	CodeDBError         = 1013 // 数据库错误
	CodeCacheError      = 1014 // 缓存错误
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrInvalidSchema = New(CodeInvalidSchema, "invalid request schema")
	ErrServerBusy    = New(CodeServerBusy, "server busy, please try again later")
)

// IsNotFound 检查错误是否为"未找到"类型（包括 gorm.ErrRecordNotFound）
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}
