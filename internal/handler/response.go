package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	"cm_contact_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// 所有接口返回统一的 JSON 信封：
//   成功: {"status":"success", ...数据字段}
//   失败: {"status":"error", "errType":"...", "desc":"..."}
// errType 是稳定的机器可读标签，desc 是给人看的描述

// errTypeOf 业务错误码 -> errType 标签
func errTypeOf(code int) string {
	switch code {
	case errorx.CodeInvalidRequest:
		return "InvalidRequest"
	case errorx.CodeInvalidJson:
		return "InvalidJson"
	case errorx.CodeInvalidSchema:
		return "InvalidSchema"
	case errorx.CodeInvalidInput:
		return "InvalidInput"
	case errorx.CodeUserExist:
		return "UserExistsError"
	case errorx.CodeUserNotExist:
		return "UserNotExistError"
	case errorx.CodeInvalidPassword:
		return "InvalidPassword"
	case errorx.CodeUnauthorized:
		return "AuthError"
	case errorx.CodeContactNotExist:
		return "NonExistentContactError"
	case errorx.CodeContactExists:
		return "ContactExistsError"
	case errorx.CodeDBError:
		return "DatabaseError"
	case errorx.CodeCacheError:
		return "CacheError"
	default:
		return "ServerError"
	}
}

// httpStatusOf 业务错误码 -> HTTP 状态码
// 校验/业务规则失败是 400，认证失败是 401，存储和未知错误是 500
// CodeNotFound 归入 500：存储层的未找到应在 Service 层翻译成领域错误，
// 漏到这里说明有映射缺口，按服务端错误处理
func httpStatusOf(code int) int {
	switch code {
	case errorx.CodeUnauthorized:
		return http.StatusUnauthorized
	case errorx.CodeNotFound, errorx.CodeServerBusy, errorx.CodeDBError, errorx.CodeCacheError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// genericDesc 5xx 错误对外隐藏内部细节，只返回笼统描述
// 具体原因已在服务端日志中
func genericDesc(code int) string {
	switch code {
	case errorx.CodeDBError:
		return "database operation failed"
	case errorx.CodeCacheError:
		return "cache operation failed"
	default:
		return "internal server error"
	}
}

// HandleSuccess 返回成功响应
// fields 中的键值平铺进信封顶层
func HandleSuccess(c *gin.Context, fields gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// HandleError 通用错误处理方法
// 自动识别 errorx.CodeError 类型的业务错误，其余错误按 ServerError 处理
func HandleError(c *gin.Context, err error) {
	handleErrorWith(c, err, nil)
}

// HandleErrorWith 同 HandleError，但允许在信封中附带额外字段
// 例如删除失败时附带 contactDeleted: false
func HandleErrorWith(c *gin.Context, err error, extra gin.H) {
	handleErrorWith(c, err, extra)
}

func handleErrorWith(c *gin.Context, err error, extra gin.H) {
	code := errorx.CodeServerBusy
	desc := ""

	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		code = codeErr.Code
		desc = codeErr.Msg
	}

	status := httpStatusOf(code)
	if status == http.StatusInternalServerError {
		// 系统错误：记录日志，对外只给笼统描述
		zap.L().Error("system error",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		desc = genericDesc(code)
	}

	body := gin.H{
		"status":  "error",
		"errType": errTypeOf(code),
		"desc":    desc,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// HandleParamError 处理请求体绑定错误
// 区分三种情况：
//   - validator 校验失败（缺少必填字段等）-> InvalidSchema，desc 带翻译后的字段提示
//   - JSON 类型不匹配 -> InvalidSchema
//   - JSON 本身无法解析 -> InvalidJson
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		translated := RemoveTopStruct(validationErrs.Translate(Trans))
		HandleError(c, errorx.New(errorx.CodeInvalidSchema, joinFieldErrors(translated)))
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		HandleError(c, errorx.Newf(errorx.CodeInvalidSchema, "invalid type for field %s", typeErr.Field))
		return
	}

	HandleError(c, errorx.New(errorx.CodeInvalidJson, "invalid payload sent"))
}

// joinFieldErrors 将字段错误 map 拼成稳定有序的单条描述
func joinFieldErrors(fields map[string]string) string {
	msgs := make([]string, 0, len(fields))
	for _, msg := range fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
